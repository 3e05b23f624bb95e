package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = srv.URL

	gateway, err := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return gateway.(*client), srv
}

func TestClient_Login_Success(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "jane@example.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Login successful",
			"user": map[string]any{
				"_id":   "68a1f2c4e5b7d90012345678",
				"name":  "Jane",
				"email": "jane@example.com",
			},
		})
	}))

	result, err := c.Login(context.Background(), "jane@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "Login successful", result.Message)
	require.NotNil(t, result.User)
	assert.Equal(t, "68a1f2c4e5b7d90012345678", result.User.ID)
	assert.Equal(t, "Jane", result.User.Name)
}

func TestClient_Login_PrefersMongoID(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "ok",
			"user":    map[string]any{"_id": "mongo-id", "id": "plain-id"},
		})
	}))

	result, err := c.Login(context.Background(), "jane@example.com", "secret123")

	require.NoError(t, err)
	require.NotNil(t, result.User)
	assert.Equal(t, "mongo-id", result.User.ID)
}

func TestClient_PlaceOrder_BackendRefusal(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "insufficient stock"})
	}))

	confirmation, err := c.PlaceOrder(context.Background(), &entity.OrderPayload{UserID: "u1"})

	require.Error(t, err)
	assert.Nil(t, confirmation)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BACKEND_REQUEST_FAILED", appErr.ErrorCode())
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "insufficient stock", appErr.Message())
}

func TestClient_PlaceOrder_ServerErrorMapsToBadGateway(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.PlaceOrder(context.Background(), &entity.OrderPayload{UserID: "u1"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
}

func TestClient_PlaceOrder_Success(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)

		var payload entity.OrderPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "u1", payload.UserID)
		require.Len(t, payload.Items, 1)
		assert.Equal(t, "prod-a", payload.Items[0].ProductID)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Order placed successfully",
			"order":   map[string]any{"_id": "order-1"},
		})
	}))

	confirmation, err := c.PlaceOrder(context.Background(), &entity.OrderPayload{
		UserID: "u1",
		Items:  []entity.OrderItem{{ProductID: "prod-a", Quantity: 2, Price: 30}},
	})

	require.NoError(t, err)
	assert.Equal(t, "order-1", confirmation.OrderID)
	assert.Equal(t, "Order placed successfully", confirmation.Message)
}

func TestClient_FetchOrders(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/user/u1", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"orders": []map[string]any{
				{"_id": "order-1", "userId": "u1", "totalAmount": 74.8},
			},
		})
	}))

	orders, err := c.FetchOrders(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "order-1", orders[0].ID)
	assert.InDelta(t, 74.8, orders[0].TotalAmount, 1e-9)
}

func TestClient_ListProducts(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"products": []map[string]any{
				{"_id": "prod-a", "name": "Product A", "price": 60.0, "inStock": true},
			},
		})
	}))

	products, err := c.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "prod-a", products[0].ID)
	assert.True(t, products[0].InStock)
}

func TestClient_NetworkFailureIsTransportError(t *testing.T) {
	c, srv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := c.ListProducts(context.Background())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BACKEND_REQUEST_FAILED", appErr.ErrorCode())
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
}
