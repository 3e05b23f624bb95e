package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderArchiveRepository keeps a local copy of orders the backend has
// confirmed, so order history stays viewable when the backend is unreachable.
type OrderArchiveRepository interface {
	// Append adds a confirmed order to the user's archive.
	Append(ctx context.Context, userID string, order *entity.Order) error

	// FindByUser returns the archived orders for a user, newest first.
	// A user with no archive yields an empty slice.
	FindByUser(ctx context.Context, userID string) ([]*entity.Order, error)
}
