package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface. Credentials are
// never verified or stored here; the backend owns the account, the gateway
// keeps the session's user record and issues its own tokens.
type accountService struct {
	backend      service.BackendGateway
	sessionRepo  repository.SessionRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Backend      service.BackendGateway
	SessionRepo  repository.SessionRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		backend:      params.Backend,
		sessionRepo:  params.SessionRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register forwards account creation to the backend, which mails the OTP.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	message, err := srv.backend.Register(ctx, &service.RegisterRequest{
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		Phone:     input.Phone,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	})
	if err != nil {
		srv.log(ctx).Error("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register account")
	}

	return &usecase.RegisterOutput{Message: message}, nil
}

// VerifyEmail completes the OTP step and signs the session in.
func (srv *accountService) VerifyEmail(ctx context.Context, sessionID string, input *usecase.VerifyEmailInput) (*usecase.AuthOutput, error) {
	result, err := srv.backend.VerifyEmail(ctx, input.Email, input.OTP)
	if err != nil {
		srv.log(ctx).Warn("Email verification failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify email")
	}
	if result.User == nil {
		return nil, domainerrors.ErrOTPInvalid
	}

	return srv.signIn(ctx, sessionID, result)
}

// Login authenticates against the backend and signs the session in.
func (srv *accountService) Login(ctx context.Context, sessionID string, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	result, err := srv.backend.Login(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to login")
	}
	if result.User == nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.signIn(ctx, sessionID, result)
}

// signIn persists the user record under the session and issues tokens.
func (srv *accountService) signIn(ctx context.Context, sessionID string, result *service.AuthResult) (*usecase.AuthOutput, error) {
	if err := srv.sessionRepo.SaveUser(ctx, sessionID, result.User); err != nil {
		return nil, errors.Wrap(err, "failed to save session user")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(result.User.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session tokens")
	}

	srv.log(ctx).Info("Session signed in", slog.String("userID", result.User.ID))

	return &usecase.AuthOutput{
		Message:      result.Message,
		User:         result.User,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout discards the session's user record. It is purely local; the backend
// holds no session state for the gateway.
func (srv *accountService) Logout(ctx context.Context, sessionID string) error {
	if err := srv.sessionRepo.DeleteUser(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to delete session user")
	}

	srv.log(ctx).Info("Session signed out")

	return nil
}

// CurrentUser returns the session's signed-in user.
func (srv *accountService) CurrentUser(ctx context.Context, sessionID string) (*entity.User, error) {
	user, err := srv.sessionRepo.FindUser(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to load session user")
	}

	return user, nil
}
