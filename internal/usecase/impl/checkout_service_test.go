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

type checkoutFixture struct {
	service   usecase.CheckoutUsecase
	txManager *mockRepo.MockTransactionManager
	cartRepo  *mockRepo.MockCartRepository
	backend   *mockSvc.MockBackendGateway
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	backend := mockSvc.NewMockBackendGateway(t)
	service := NewCheckoutService(CheckoutServiceParams{
		TxManager: txManager,
		CartRepo:  cartRepo,
		Backend:   backend,
		Logger:    newDiscardLogger(),
	})

	return &checkoutFixture{
		service:   service,
		txManager: txManager,
		cartRepo:  cartRepo,
		backend:   backend,
	}
}

func validCheckoutInput() *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		Email:         "jane@example.com",
		FirstName:     "Jane",
		LastName:      "Doe",
		Address:       "1 Main St",
		City:          "Springfield",
		State:         "IL",
		ZipCode:       "62701",
		PaymentMethod: "COD",
	}
}

func filledCart(t *testing.T) *entity.Cart {
	t.Helper()

	cart := entity.NewCart()
	_, err := cart.Add(entity.Product{ID: "prod-a", Name: "Product A", Price: 30, InStock: true}, 2)
	require.NoError(t, err)

	return cart
}

func TestCheckoutService_Checkout_Success(t *testing.T) {
	fx := newCheckoutFixture(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().Find(ctx, "sess-1").Return(filledCart(t), nil)

	fx.backend.EXPECT().
		PlaceOrder(ctx, mock.AnythingOfType("*entity.OrderPayload")).
		Run(func(ctx context.Context, payload *entity.OrderPayload) {
			assert.Equal(t, "user-1", payload.UserID)
			require.Len(t, payload.Items, 1)
			assert.Equal(t, "prod-a", payload.Items[0].ProductID)
			assert.Equal(t, 2, payload.Items[0].Quantity)
			assert.InDelta(t, 30.0, payload.Items[0].Price, 1e-9)
			// 60 subtotal + 10 shipping + 4.80 tax
			assert.InDelta(t, 74.8, payload.TotalAmount, 1e-9)
			assert.Equal(t, "1 Main St, Springfield, IL, 62701", payload.Address)
			assert.Equal(t, "COD", payload.PaymentMethod)
		}).
		Return(&service.OrderConfirmation{OrderID: "order-1", Message: "Order placed successfully"}, nil)

	archiveRepo := mockRepo.NewMockOrderArchiveRepository(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderArchiveRepo().Return(archiveRepo)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	archiveRepo.EXPECT().Append(ctx, "user-1", mock.AnythingOfType("*entity.Order")).Return(nil)
	txCartRepo.EXPECT().Delete(ctx, "sess-1").Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			require.NoError(t, fn(factory))
		}).
		Return(nil)

	out, err := fx.service.Checkout(ctx, "sess-1", "user-1", validCheckoutInput())

	require.NoError(t, err)
	assert.Equal(t, "order-1", out.OrderID)
	assert.Equal(t, "Order placed successfully", out.Message)
	require.NotNil(t, out.Order)
	assert.Equal(t, "confirmed", out.Order.Status)
	assert.InDelta(t, 74.8, out.Order.TotalAmount, 1e-9)
}

func TestCheckoutService_Checkout_RequiresSignedInUser(t *testing.T) {
	fx := newCheckoutFixture(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().Find(ctx, "sess-1").Return(filledCart(t), nil)

	out, err := fx.service.Checkout(ctx, "sess-1", "", validCheckoutInput())

	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHENTICATED", appErr.ErrorCode())
}

func TestCheckoutService_Checkout_ReportsFirstMissingField(t *testing.T) {
	fx := newCheckoutFixture(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().Find(ctx, "sess-1").Return(filledCart(t), nil)

	input := validCheckoutInput()
	input.FirstName = ""
	input.Address = ""

	out, err := fx.service.Checkout(ctx, "sess-1", "user-1", input)

	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CHECKOUT_VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "firstName is required", appErr.Details())
}

func TestCheckoutService_Checkout_EmptyBodyReportsMissingEmail(t *testing.T) {
	fx := newCheckoutFixture(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().Find(ctx, "sess-1").Return(filledCart(t), nil)

	// A request without a body binds to a nil input.
	out, err := fx.service.Checkout(ctx, "sess-1", "user-1", nil)

	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CHECKOUT_VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "email is required", appErr.Details())
}

func TestCheckoutService_Checkout_ReportsMalformedEmail(t *testing.T) {
	fx := newCheckoutFixture(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().Find(ctx, "sess-1").Return(filledCart(t), nil)

	input := validCheckoutInput()
	input.Email = "not-an-email"

	out, err := fx.service.Checkout(ctx, "sess-1", "user-1", input)

	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "email is invalid", appErr.Details())
}

func TestCheckoutService_Checkout_RejectsUnknownPaymentMethod(t *testing.T) {
	fx := newCheckoutFixture(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().Find(ctx, "sess-1").Return(filledCart(t), nil)

	input := validCheckoutInput()
	input.PaymentMethod = "CARD"

	out, err := fx.service.Checkout(ctx, "sess-1", "user-1", input)

	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAYMENT_METHOD_INVALID", appErr.ErrorCode())
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	fx := newCheckoutFixture(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().Find(ctx, "sess-1").Return(entity.NewCart(), nil)

	out, err := fx.service.Checkout(ctx, "sess-1", "user-1", validCheckoutInput())

	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CART_EMPTY", appErr.ErrorCode())
}

func TestCheckoutService_Checkout_BackendFailureLeavesCart(t *testing.T) {
	fx := newCheckoutFixture(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().Find(ctx, "sess-1").Return(filledCart(t), nil)
	fx.backend.EXPECT().
		PlaceOrder(ctx, mock.AnythingOfType("*entity.OrderPayload")).
		Return(nil, errors.New("connection refused"))

	out, err := fx.service.Checkout(ctx, "sess-1", "user-1", validCheckoutInput())

	require.Error(t, err)
	assert.Nil(t, out)
	// No Execute expectation on txManager: the cart must not be touched.
}

func TestCheckoutService_Checkout_CleanupFailureStillConfirms(t *testing.T) {
	fx := newCheckoutFixture(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().Find(ctx, "sess-1").Return(filledCart(t), nil)
	fx.backend.EXPECT().
		PlaceOrder(ctx, mock.AnythingOfType("*entity.OrderPayload")).
		Return(&service.OrderConfirmation{OrderID: "order-1", Message: "Order placed successfully"}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("store unavailable"))

	out, err := fx.service.Checkout(ctx, "sess-1", "user-1", validCheckoutInput())

	// The backend confirmed the order, so the user still gets a confirmation.
	require.NoError(t, err)
	assert.Equal(t, "order-1", out.OrderID)
}
