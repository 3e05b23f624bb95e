package handler

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler serves the signed-in user's profile and order history.
type ProfileHandler struct {
	profileUc usecase.ProfileUsecase
	accountUc usecase.AccountUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(profileUc usecase.ProfileUsecase, accountUc usecase.AccountUsecase) *ProfileHandler {
	return &ProfileHandler{
		profileUc: profileUc,
		accountUc: accountUc,
	}
}

// Me returns the session's signed-in user.
func (h *ProfileHandler) Me(c echo.Context) error {
	user, err := h.accountUc.CurrentUser(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// OrderHistory lists the signed-in user's orders, newest first.
func (h *ProfileHandler) OrderHistory(c echo.Context) error {
	orders, err := h.profileUc.OrderHistory(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"orders": orders}, "")
}
