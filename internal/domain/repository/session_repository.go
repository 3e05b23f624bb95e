package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when no signed-in user
// record exists for a session.
var ErrUserNotFound = errors.New("user not found")

// SessionRepository persists the signed-in user record for a shopping session.
// The record is written on sign-in, deleted on sign-out, and read whenever the
// session's identity is needed. A corrupt stored value is treated as a missing
// record.
type SessionRepository interface {
	// FindUser retrieves the signed-in user for a session, or ErrUserNotFound.
	FindUser(ctx context.Context, sessionID string) (*entity.User, error)

	// SaveUser stores the signed-in user for a session.
	SaveUser(ctx context.Context, sessionID string, user *entity.User) error

	// DeleteUser removes the signed-in user record for a session.
	DeleteUser(ctx context.Context, sessionID string) error
}
