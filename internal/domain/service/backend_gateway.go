package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// RegisterRequest carries the fields forwarded to the backend's registration
// endpoint. Latitude/longitude are optional and passed through untouched.
type RegisterRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Phone     string   `json:"phone"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// AuthResult is the backend's answer to a successful login or email
// verification: a human-readable message plus the account record.
type AuthResult struct {
	Message string
	User    *entity.User
}

// OrderConfirmation reports a successfully placed order.
type OrderConfirmation struct {
	OrderID string
	Message string
}

// BackendGateway is the gateway's view of the remote commerce API. Every call
// is a single HTTP round trip; retry policy is deliberately absent, a failed
// call surfaces to the caller with local state untouched.
type BackendGateway interface {
	// Register starts account creation and triggers the email OTP step.
	Register(ctx context.Context, req *RegisterRequest) (message string, err error)

	// VerifyEmail completes registration with the OTP sent to the email.
	VerifyEmail(ctx context.Context, email, otp string) (*AuthResult, error)

	// Login authenticates an existing account.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// PlaceOrder submits a finalized order payload.
	PlaceOrder(ctx context.Context, payload *entity.OrderPayload) (*OrderConfirmation, error)

	// FetchOrders lists the orders the backend holds for a user.
	FetchOrders(ctx context.Context, userID string) ([]*entity.Order, error)

	// ListProducts returns the catalog.
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// GetProduct returns a single catalog item.
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
}
