package postgres

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"gorm.io/gorm"
)

const cartKeyPrefix = "cart:"

// cartRepository implements the domain CartRepository interface on top of the
// key/value store.
type cartRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB, logger *slog.Logger) repository.CartRepository {
	return &cartRepository{db: db, logger: logger}
}

// Find retrieves the cart stored for a session. A missing record yields an
// empty cart. A value that no longer parses is logged and treated the same
// way rather than failing the session.
func (repo *cartRepository) Find(ctx context.Context, sessionID string) (*entity.Cart, error) {
	raw, found, err := fetchEntry(ctx, repo.db, cartKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return entity.NewCart(), nil
	}

	cart := entity.NewCart()
	if err := json.Unmarshal(raw, cart); err != nil {
		repo.logger.WarnContext(ctx, "discarding unreadable cart record",
			slog.String("sessionId", sessionID),
			slog.String("error", err.Error()),
		)

		return entity.NewCart(), nil
	}

	return cart, nil
}

func (repo *cartRepository) Save(ctx context.Context, sessionID string, cart *entity.Cart) error {
	return upsertEntry(ctx, repo.db, cartKeyPrefix+sessionID, cart)
}

func (repo *cartRepository) Delete(ctx context.Context, sessionID string) error {
	return deleteEntry(ctx, repo.db, cartKeyPrefix+sessionID)
}
