// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// AddItemInput defines the data required to add a product to a cart.
type AddItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// --- Output DTOs ---

// CartOutput returns the cart together with its derived pricing summary.
// The summary is recomputed on every call; it is never stored.
type CartOutput struct {
	Cart      *entity.Cart
	Summary   entity.PricingSummary
	ItemCount int
}

// AddItemOutput extends CartOutput with the added-vs-updated signal so the
// caller can phrase its notification.
type AddItemOutput struct {
	CartOutput
	Added bool
}

// CartUsecase defines the interface for cart-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CartUsecase interface {
	// GetCart loads the session's cart and its pricing summary.
	GetCart(ctx context.Context, sessionID string) (*CartOutput, error)

	// AddItem merges a product into the session's cart.
	AddItem(ctx context.Context, sessionID string, input *AddItemInput) (*AddItemOutput, error)

	// UpdateItemQuantity replaces a line's quantity; zero removes the line.
	UpdateItemQuantity(ctx context.Context, sessionID, productID string, quantity int) (*CartOutput, error)

	// RemoveItem deletes a line from the session's cart.
	RemoveItem(ctx context.Context, sessionID, productID string) (*CartOutput, error)
}
