// Package backend implements the gateway's client for the remote commerce API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// client implements service.BackendGateway over plain HTTP. One round trip
// per call, no retries; a failed call surfaces to the use case with local
// state untouched.
type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a backend gateway from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.BackendGateway, error) {
	baseURL := strings.TrimRight(cfg.Backend.BaseURL, "/")
	if baseURL == "" {
		return nil, errors.New("backend base URL must be configured")
	}

	timeout := cfg.Backend.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// Register starts account creation; the backend mails the OTP.
func (c *client) Register(ctx context.Context, req *service.RegisterRequest) (string, error) {
	var out messageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", req, &out); err != nil {
		return "", err
	}

	return out.Message, nil
}

// VerifyEmail completes registration with the emailed OTP.
func (c *client) VerifyEmail(ctx context.Context, email, otp string) (*service.AuthResult, error) {
	body := map[string]string{"email": email, "otp": otp}

	var out authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/verify-email", body, &out); err != nil {
		return nil, err
	}

	return &service.AuthResult{Message: out.Message, User: out.User.toEntity()}, nil
}

// Login authenticates an existing account.
func (c *client) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	body := map[string]string{"email": email, "password": password}

	var out authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}

	return &service.AuthResult{Message: out.Message, User: out.User.toEntity()}, nil
}

// PlaceOrder submits a finalized order payload.
func (c *client) PlaceOrder(ctx context.Context, payload *entity.OrderPayload) (*service.OrderConfirmation, error) {
	var out orderResponse
	if err := c.doJSON(ctx, http.MethodPost, "/orders", payload, &out); err != nil {
		return nil, err
	}

	return &service.OrderConfirmation{OrderID: out.orderID(), Message: out.Message}, nil
}

// FetchOrders lists the backend's orders for a user.
func (c *client) FetchOrders(ctx context.Context, userID string) ([]*entity.Order, error) {
	path := "/orders/user/" + url.PathEscape(userID)

	var out ordersResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	orders := make([]*entity.Order, 0, len(out.Orders))
	for _, dto := range out.Orders {
		orders = append(orders, dto.toEntity())
	}

	return orders, nil
}

// ListProducts returns the catalog.
func (c *client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var out productsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}

	products := make([]entity.Product, 0, len(out.Products))
	for _, dto := range out.Products {
		products = append(products, dto.toEntity())
	}

	return products, nil
}

// GetProduct returns a single catalog item.
func (c *client) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	path := "/products/" + url.PathEscape(productID)

	var out productDTO
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	product := out.toEntity()

	return &product, nil
}

// doJSON performs one JSON round trip against the backend. Non-2xx responses
// become BackendRequestError carrying the backend's own message when it sent
// one.
func (c *client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.WithStack(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Backend request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return domainerrors.NewBackendRequestError(err, 0, "")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domainerrors.NewBackendRequestError(err, resp.StatusCode, "")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := extractMessage(respBody)
		c.logger.Warn("Backend request refused",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("message", message),
		)

		return domainerrors.NewBackendRequestError(
			fmt.Errorf("backend returned status %d", resp.StatusCode),
			resp.StatusCode,
			message,
		)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return domainerrors.NewBackendRequestError(err, resp.StatusCode, "")
	}

	return nil
}

// extractMessage pulls the backend's error message out of a failure body.
func extractMessage(body []byte) string {
	var payload messageResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	return payload.Message
}
