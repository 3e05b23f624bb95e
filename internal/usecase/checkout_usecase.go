package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutInput is the shipping/contact form submitted at checkout. Field
// order matters: validation reports the first missing field, top to bottom.
type CheckoutInput struct {
	Email         string `json:"email" validate:"required,email"`
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Address       string `json:"address" validate:"required"`
	City          string `json:"city" validate:"required"`
	State         string `json:"state" validate:"required"`
	ZipCode       string `json:"zipCode" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

// CheckoutOutput returns the backend's confirmation for a placed order.
type CheckoutOutput struct {
	OrderID string
	Message string
	Order   *entity.Order
}

// CheckoutUsecase validates the checkout form, builds the order payload from
// the session's cart, submits it, and on confirmation clears the cart.
type CheckoutUsecase interface {
	// Checkout places an order for the signed-in user identified by userID.
	// On any failure the cart is left untouched so the user can retry.
	Checkout(ctx context.Context, sessionID, userID string, input *CheckoutInput) (*CheckoutOutput, error)
}
