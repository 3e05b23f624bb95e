package postgres

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"gorm.io/gorm"
)

const sessionUserKeyPrefix = "user:"

// sessionRepository implements the domain SessionRepository interface on top
// of the key/value store.
type sessionRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB, logger *slog.Logger) repository.SessionRepository {
	return &sessionRepository{db: db, logger: logger}
}

// FindUser retrieves the signed-in user for a session. A corrupt record is
// logged and reported as missing, which signs the session out.
func (repo *sessionRepository) FindUser(ctx context.Context, sessionID string) (*entity.User, error) {
	raw, found, err := fetchEntry(ctx, repo.db, sessionUserKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrUserNotFound
	}

	user := new(entity.User)
	if err := json.Unmarshal(raw, user); err != nil {
		repo.logger.WarnContext(ctx, "discarding unreadable session user record",
			slog.String("sessionId", sessionID),
			slog.String("error", err.Error()),
		)

		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (repo *sessionRepository) SaveUser(ctx context.Context, sessionID string, user *entity.User) error {
	return upsertEntry(ctx, repo.db, sessionUserKeyPrefix+sessionID, user)
}

func (repo *sessionRepository) DeleteUser(ctx context.Context, sessionID string) error {
	return deleteEntry(ctx, repo.db, sessionUserKeyPrefix+sessionID)
}
