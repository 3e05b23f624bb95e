package postgres

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"gorm.io/gorm"
)

const orderArchiveKeyPrefix = "orders:"

// orderArchiveRepository implements the domain OrderArchiveRepository
// interface on top of the key/value store. Each user has a single archive
// document holding their confirmed orders, newest first.
type orderArchiveRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewOrderArchiveRepository is the constructor for orderArchiveRepository.
func NewOrderArchiveRepository(db *gorm.DB, logger *slog.Logger) repository.OrderArchiveRepository {
	return &orderArchiveRepository{db: db, logger: logger}
}

// Append adds a confirmed order to the front of the user's archive. A corrupt
// archive is logged and replaced rather than blocking the new order.
func (repo *orderArchiveRepository) Append(ctx context.Context, userID string, order *entity.Order) error {
	orders, err := repo.FindByUser(ctx, userID)
	if err != nil {
		return err
	}

	orders = append([]*entity.Order{order}, orders...)

	return upsertEntry(ctx, repo.db, orderArchiveKeyPrefix+userID, orders)
}

// FindByUser returns the archived orders for a user, newest first.
func (repo *orderArchiveRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	raw, found, err := fetchEntry(ctx, repo.db, orderArchiveKeyPrefix+userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return []*entity.Order{}, nil
	}

	var orders []*entity.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		repo.logger.WarnContext(ctx, "discarding unreadable order archive",
			slog.String("userId", userID),
			slog.String("error", err.Error()),
		)

		return []*entity.Order{}, nil
	}

	return orders, nil
}
