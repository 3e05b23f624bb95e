package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	mockRepo "storefront/internal/mocks/repository"
	mockUc "storefront/internal/mocks/usecase"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartHandlerFixture(t *testing.T) (*CartHandler, *mockRepo.MockCartRepository, *mockUc.MockCatalogUsecase) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	catalog := mockUc.NewMockCatalogUsecase(t)
	uc := impl.NewCartService(impl.CartServiceParams{
		CartRepo: cartRepo,
		Catalog:  catalog,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return NewCartHandler(uc), cartRepo, catalog
}

func newEchoContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetSessionID(c, "sess-1")

	return c, rec
}

func TestCartHandler_GetCart(t *testing.T) {
	handler, cartRepo, _ := newCartHandlerFixture(t)

	cart := entity.NewCart()
	_, err := cart.Add(entity.Product{ID: "prod-a", Name: "Product A", Price: 60, InStock: true}, 2)
	require.NoError(t, err)

	cartRepo.EXPECT().Find(mock.Anything, "sess-1").Return(cart, nil)

	c, rec := newEchoContext(t, http.MethodGet, "/cart", "")

	require.NoError(t, handler.GetCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, `"prod-a"`)
	assert.Contains(t, body, `"itemCount":2`)
	assert.Contains(t, body, `"subtotal":120`)
}

func TestCartHandler_AddItem(t *testing.T) {
	handler, cartRepo, catalog := newCartHandlerFixture(t)

	catalog.EXPECT().
		GetProduct(mock.Anything, "prod-a").
		Return(&entity.Product{ID: "prod-a", Name: "Product A", Price: 60, InStock: true}, nil)
	cartRepo.EXPECT().Find(mock.Anything, "sess-1").Return(entity.NewCart(), nil)
	cartRepo.EXPECT().Save(mock.Anything, "sess-1", mock.AnythingOfType("*entity.Cart")).Return(nil)

	c, rec := newEchoContext(t, http.MethodPost, "/cart/items", `{"productId":"prod-a","quantity":2}`)

	require.NoError(t, handler.AddItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "已加入購物車")
}

func TestCartHandler_AddItem_MissingProductID(t *testing.T) {
	handler, _, _ := newCartHandlerFixture(t)

	c, rec := newEchoContext(t, http.MethodPost, "/cart/items", `{"quantity":2}`)

	require.NoError(t, handler.AddItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestCartHandler_RemoveItem(t *testing.T) {
	handler, cartRepo, _ := newCartHandlerFixture(t)

	cart := entity.NewCart()
	_, err := cart.Add(entity.Product{ID: "prod-a", Name: "Product A", Price: 60, InStock: true}, 1)
	require.NoError(t, err)

	cartRepo.EXPECT().Find(mock.Anything, "sess-1").Return(cart, nil)
	cartRepo.EXPECT().Save(mock.Anything, "sess-1", mock.AnythingOfType("*entity.Cart")).Return(nil)

	c, rec := newEchoContext(t, http.MethodDelete, "/cart/items/prod-a", "")
	c.SetParamNames("productId")
	c.SetParamValues("prod-a")

	require.NoError(t, handler.RemoveItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"itemCount":0`)
}
