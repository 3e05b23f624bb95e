// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartRepository defines the standard operations for cart persistence.
// Carts are keyed by the shopping session that owns them. A session without a
// stored cart (or with an unreadable one) is reported as an empty cart, never
// as an error; a corrupt stored value must not take the session down.
type CartRepository interface {
	// Find retrieves the cart for a session. A missing record yields an
	// empty cart.
	Find(ctx context.Context, sessionID string) (*entity.Cart, error)

	// Save persists the cart for a session, replacing any previous value.
	Save(ctx context.Context, sessionID string, cart *entity.Cart) error

	// Delete removes the stored cart for a session. Deleting an absent
	// cart is a no-op.
	Delete(ctx context.Context, sessionID string) error
}
