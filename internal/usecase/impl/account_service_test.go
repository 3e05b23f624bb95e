package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountFixture struct {
	service      usecase.AccountUsecase
	backend      *mockSvc.MockBackendGateway
	sessionRepo  *mockRepo.MockSessionRepository
	tokenService *mockSvc.MockTokenService
}

func newAccountFixture(t *testing.T) *accountFixture {
	backend := mockSvc.NewMockBackendGateway(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	svc := NewAccountService(AccountServiceParams{
		Backend:      backend,
		SessionRepo:  sessionRepo,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return &accountFixture{
		service:      svc,
		backend:      backend,
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
	}
}

func TestAccountService_Register_ForwardsToBackend(t *testing.T) {
	fx := newAccountFixture(t)
	ctx := context.Background()

	fx.backend.EXPECT().
		Register(ctx, mock.AnythingOfType("*service.RegisterRequest")).
		Run(func(ctx context.Context, req *service.RegisterRequest) {
			assert.Equal(t, "Jane", req.Name)
			assert.Equal(t, "jane@example.com", req.Email)
		}).
		Return("User registered. Please verify your email.", nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "secret123",
		Phone:    "0912345678",
	})

	require.NoError(t, err)
	assert.Equal(t, "User registered. Please verify your email.", out.Message)
}

func TestAccountService_Login_SignsSessionIn(t *testing.T) {
	fx := newAccountFixture(t)
	ctx := context.Background()

	user := &entity.User{ID: "user-1", Name: "Jane", Email: "jane@example.com"}
	fx.backend.EXPECT().
		Login(ctx, "jane@example.com", "secret123").
		Return(&service.AuthResult{Message: "Login successful", User: user}, nil)
	fx.sessionRepo.EXPECT().SaveUser(ctx, "sess-1", user).Return(nil)
	fx.tokenService.EXPECT().GenerateTokens("user-1").Return("access-token", "refresh-token", nil)

	out, err := fx.service.Login(ctx, "sess-1", &usecase.LoginInput{Email: "jane@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, user, out.User)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
}

func TestAccountService_Login_RejectedByBackend(t *testing.T) {
	fx := newAccountFixture(t)
	ctx := context.Background()

	fx.backend.EXPECT().
		Login(ctx, "jane@example.com", "wrong").
		Return(&service.AuthResult{Message: "Invalid credentials"}, nil)

	out, err := fx.service.Login(ctx, "sess-1", &usecase.LoginInput{Email: "jane@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
}

func TestAccountService_VerifyEmail_SignsSessionIn(t *testing.T) {
	fx := newAccountFixture(t)
	ctx := context.Background()

	user := &entity.User{ID: "user-1", Email: "jane@example.com"}
	fx.backend.EXPECT().
		VerifyEmail(ctx, "jane@example.com", "123456").
		Return(&service.AuthResult{Message: "Email verified", User: user}, nil)
	fx.sessionRepo.EXPECT().SaveUser(ctx, "sess-1", user).Return(nil)
	fx.tokenService.EXPECT().GenerateTokens("user-1").Return("access-token", "refresh-token", nil)

	out, err := fx.service.VerifyEmail(ctx, "sess-1", &usecase.VerifyEmailInput{Email: "jane@example.com", OTP: "123456"})

	require.NoError(t, err)
	assert.Equal(t, "Email verified", out.Message)
	assert.Equal(t, "user-1", out.User.ID)
}

func TestAccountService_VerifyEmail_WrongOTP(t *testing.T) {
	fx := newAccountFixture(t)
	ctx := context.Background()

	fx.backend.EXPECT().
		VerifyEmail(ctx, "jane@example.com", "000000").
		Return(&service.AuthResult{Message: "Invalid OTP"}, nil)

	out, err := fx.service.VerifyEmail(ctx, "sess-1", &usecase.VerifyEmailInput{Email: "jane@example.com", OTP: "000000"})

	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "OTP_INVALID", appErr.ErrorCode())
}

func TestAccountService_Logout_DeletesSessionUser(t *testing.T) {
	fx := newAccountFixture(t)
	ctx := context.Background()

	fx.sessionRepo.EXPECT().DeleteUser(ctx, "sess-1").Return(nil)

	require.NoError(t, fx.service.Logout(ctx, "sess-1"))
}

func TestAccountService_CurrentUser_Found(t *testing.T) {
	fx := newAccountFixture(t)
	ctx := context.Background()

	user := &entity.User{ID: "user-1"}
	fx.sessionRepo.EXPECT().FindUser(ctx, "sess-1").Return(user, nil)

	got, err := fx.service.CurrentUser(ctx, "sess-1")

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAccountService_CurrentUser_NotSignedIn(t *testing.T) {
	fx := newAccountFixture(t)
	ctx := context.Background()

	fx.sessionRepo.EXPECT().FindUser(ctx, "sess-1").Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.CurrentUser(ctx, "sess-1")

	require.Error(t, err)
	assert.Nil(t, got)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHENTICATED", appErr.ErrorCode())
}

func TestAccountService_Login_BackendDown(t *testing.T) {
	fx := newAccountFixture(t)
	ctx := context.Background()

	fx.backend.EXPECT().
		Login(ctx, "jane@example.com", "secret123").
		Return(nil, errors.New("connection refused"))

	out, err := fx.service.Login(ctx, "sess-1", &usecase.LoginInput{Email: "jane@example.com", Password: "secret123"})

	require.Error(t, err)
	assert.Nil(t, out)
}
