package handler

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// cartPayload is the JSON shape of a cart in API responses.
type cartPayload struct {
	Items     []entity.LineItem     `json:"items"`
	Summary   entity.PricingSummary `json:"summary"`
	ItemCount int                   `json:"itemCount"`
}

func newCartPayload(out *usecase.CartOutput) cartPayload {
	return cartPayload{
		Items:     out.Cart.Items,
		Summary:   out.Summary.Rounded(),
		ItemCount: out.ItemCount,
	}
}

// updateQuantityRequest is the body for quantity replacement.
type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the session's cart with its pricing summary.
func (h *CartHandler) GetCart(c echo.Context) error {
	out, err := h.uc.GetCart(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCartPayload(out), "")
}

// GetSummary returns only the derived pricing summary.
func (h *CartHandler) GetSummary(c echo.Context) error {
	out, err := h.uc.GetCart(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, out.Summary.Rounded(), "")
}

// AddItem merges a product into the session's cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input *usecase.AddItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "無法解析購物車項目")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "缺少商品編號")
	}

	out, err := h.uc.AddItem(c.Request().Context(), deliverycontext.GetSessionID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "已更新購物車數量"
	if out.Added {
		message = "已加入購物車"
	}

	return response.Success(c, http.StatusOK, newCartPayload(&out.CartOutput), message)
}

// UpdateItemQuantity replaces a line's quantity. Zero removes the line.
func (h *CartHandler) UpdateItemQuantity(c echo.Context) error {
	var body updateQuantityRequest
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "無法解析數量")
	}

	out, err := h.uc.UpdateItemQuantity(c.Request().Context(), deliverycontext.GetSessionID(c), c.Param("productId"), body.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCartPayload(out), "")
}

// RemoveItem deletes a line from the session's cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	out, err := h.uc.RemoveItem(c.Request().Context(), deliverycontext.GetSessionID(c), c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCartPayload(out), "已從購物車移除")
}
