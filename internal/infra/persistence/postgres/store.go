package postgres

import (
	"context"
	"encoding/json"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// fetchEntry loads the raw JSON value stored under key. The second return
// value reports whether the key exists.
func fetchEntry(ctx context.Context, db *gorm.DB, key string) ([]byte, bool, error) {
	var entry model.StoreEntryModel
	if err := db.WithContext(ctx).First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}

		return nil, false, domainerrors.NewStoreExecuteError(err, "failed to read store entry")
	}

	return entry.Value, true, nil
}

// upsertEntry serializes value as JSON and writes it under key, replacing any
// previous value.
func upsertEntry(ctx context.Context, db *gorm.DB, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to serialize store entry")
	}

	entry := model.StoreEntryModel{
		Key:       key,
		Value:     raw,
		UpdatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error; err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to write store entry")
	}

	return nil
}

// deleteEntry removes the value stored under key. Deleting an absent key is a
// no-op.
func deleteEntry(ctx context.Context, db *gorm.DB, key string) error {
	if err := db.WithContext(ctx).Delete(&model.StoreEntryModel{}, "key = ?", key).Error; err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete store entry")
	}

	return nil
}
