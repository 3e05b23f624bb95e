package impl

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	backend   service.BackendGateway
	validate  *validator.Validate
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Backend   service.BackendGateway
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	validate := validator.New()
	// Report fields by their json names so validation failures match the
	// field names the client submitted.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &checkoutService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		backend:   params.Backend,
		validate:  validate,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout validates the form, builds the order payload, submits it to the
// backend, and on confirmation archives the order and clears the cart in one
// transaction. Every failure before confirmation leaves the cart untouched.
func (srv *checkoutService) Checkout(ctx context.Context, sessionID, userID string, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	cart, err := srv.cartRepo.Find(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart for checkout")
	}

	payload, err := srv.buildOrderPayload(cart, input, userID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Submitting order",
		slog.String("userID", userID),
		slog.Int("lines", len(payload.Items)),
		slog.Float64("totalAmount", payload.TotalAmount),
	)

	confirmation, err := srv.backend.PlaceOrder(ctx, payload)
	if err != nil {
		srv.log(ctx).Error("Order submission failed", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to place order")
	}

	order := confirmedOrder(confirmation, payload)

	// The cart is cleared only now that the backend has confirmed, and the
	// clear and the archive write commit together.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.OrderArchiveRepo().Append(ctx, userID, order); err != nil {
			return errors.Wrap(err, "failed to archive confirmed order")
		}
		if err := repoFactory.CartRepo().Delete(ctx, sessionID); err != nil {
			return errors.Wrap(err, "failed to clear cart after order")
		}

		return nil
	})
	if err != nil {
		// The order exists on the backend; failing the request now would tell
		// the user their confirmed order failed. Surface locally instead.
		srv.log(ctx).Error("Post-order cleanup failed, cart left in place",
			slog.String("userID", userID),
			slog.String("orderID", confirmation.OrderID),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Order confirmed",
		slog.String("userID", userID),
		slog.String("orderID", confirmation.OrderID),
	)

	return &usecase.CheckoutOutput{
		OrderID: confirmation.OrderID,
		Message: confirmation.Message,
		Order:   order,
	}, nil
}

// buildOrderPayload assembles the immutable order-submission request from the
// cart, the checkout form, and the authenticated user. It performs no I/O.
// Validation is fail-fast: the first missing field is reported, never an
// aggregate.
func (srv *checkoutService) buildOrderPayload(cart *entity.Cart, input *usecase.CheckoutInput, userID string) (*entity.OrderPayload, error) {
	if userID == "" {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("checkout requires a signed-in user")
	}

	// An absent body binds to a nil input; validate it as an empty form so
	// the caller gets the first-missing-field report instead of a 500.
	if input == nil {
		input = &usecase.CheckoutInput{}
	}

	if err := srv.validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			detail := fieldErrs[0].Field() + " is required"
			if fieldErrs[0].Tag() != "required" {
				detail = fieldErrs[0].Field() + " is invalid"
			}

			return nil, domainerrors.ErrCheckoutValidation.WithDetails(detail)
		}

		return nil, errors.Wrap(err, "checkout form validation failed")
	}

	if !entity.PaymentMethod(input.PaymentMethod).IsValid() {
		return nil, domainerrors.ErrPaymentMethodInvalid.WithDetails(input.PaymentMethod)
	}

	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	items := make([]entity.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, entity.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.UnitPrice,
		})
	}

	summary := cart.Summarize()

	return &entity.OrderPayload{
		UserID:        userID,
		Items:         items,
		TotalAmount:   summary.Total,
		Address:       fmt.Sprintf("%s, %s, %s, %s", input.Address, input.City, input.State, input.ZipCode),
		PaymentMethod: input.PaymentMethod,
		Email:         input.Email,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
	}, nil
}

func confirmedOrder(confirmation *service.OrderConfirmation, payload *entity.OrderPayload) *entity.Order {
	return &entity.Order{
		ID:            confirmation.OrderID,
		UserID:        payload.UserID,
		Items:         payload.Items,
		TotalAmount:   payload.TotalAmount,
		Address:       payload.Address,
		PaymentMethod: payload.PaymentMethod,
		Status:        "confirmed",
		CreatedAt:     time.Now().UTC(),
	}
}
