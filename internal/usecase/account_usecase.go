package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name      string   `json:"name" validate:"required"`
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=6"`
	Phone     string   `json:"phone" validate:"required"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// VerifyEmailInput defines the data required to complete the OTP step.
type VerifyEmailInput struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the backend's registration message. The account is
// not signed in until the OTP verification completes.
type RegisterOutput struct {
	Message string
}

// AuthOutput returns the signed-in user and the gateway-issued tokens after a
// successful login or email verification.
type AuthOutput struct {
	Message      string
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// AccountUsecase defines the interface for authentication and profile
// operations. Credentials are verified by the remote backend; the gateway
// stores the resulting user record under the session and issues its own
// tokens.
type AccountUsecase interface {
	// Register forwards account creation to the backend, triggering the OTP email.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// VerifyEmail completes registration and signs the session in.
	VerifyEmail(ctx context.Context, sessionID string, input *VerifyEmailInput) (*AuthOutput, error)

	// Login authenticates against the backend and signs the session in.
	Login(ctx context.Context, sessionID string, input *LoginInput) (*AuthOutput, error)

	// Logout discards the session's signed-in user record.
	Logout(ctx context.Context, sessionID string) error

	// CurrentUser returns the session's signed-in user, or ErrUnauthenticated.
	CurrentUser(ctx context.Context, sessionID string) (*entity.User, error)
}
