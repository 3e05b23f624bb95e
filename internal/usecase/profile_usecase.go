package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProfileUsecase serves the signed-in user's order history.
type ProfileUsecase interface {
	// OrderHistory lists the user's orders. The backend is the source of
	// truth; locally archived orders are served when it is unreachable.
	OrderHistory(ctx context.Context, userID string) ([]*entity.Order, error)
}
