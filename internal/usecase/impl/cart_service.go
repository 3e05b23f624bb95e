// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo repository.CartRepository
	catalog  usecase.CatalogUsecase
	logger   *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo repository.CartRepository
	Catalog  usecase.CatalogUsecase
	Logger   *slog.Logger
}

// NewCartService is the constructor for cartService. It receives all dependencies as interfaces.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo: params.CartRepo,
		catalog:  params.Catalog,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart loads the session's cart and derives its pricing summary.
func (srv *cartService) GetCart(ctx context.Context, sessionID string) (*usecase.CartOutput, error) {
	cart, err := srv.cartRepo.Find(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cartOutput(cart), nil
}

// AddItem resolves the product from the catalog and merges it into the cart.
func (srv *cartService) AddItem(ctx context.Context, sessionID string, input *usecase.AddItemInput) (*usecase.AddItemOutput, error) {
	quantity := input.Quantity
	if quantity == 0 {
		// The storefront adds a single unit unless the caller picked a quantity.
		quantity = 1
	}
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity.WithDetails("quantity must be at least 1")
	}

	product, err := srv.catalog.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve product for cart add")
	}
	if !product.InStock {
		return nil, domainerrors.ErrProductUnavailable.WithDetails(product.Name)
	}

	cart, err := srv.cartRepo.Find(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	added, err := cart.Add(*product, quantity)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidQuantity) {
			return nil, domainerrors.ErrInvalidQuantity.WithDetails("quantity must be at least 1")
		}

		return nil, errors.Wrap(err, "failed to add item to cart")
	}

	if err := srv.cartRepo.Save(ctx, sessionID, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	srv.log(ctx).Debug("Cart item added",
		slog.String("productID", input.ProductID),
		slog.Int("quantity", quantity),
		slog.Bool("newLine", added),
	)

	return &usecase.AddItemOutput{CartOutput: *cartOutput(cart), Added: added}, nil
}

// UpdateItemQuantity replaces a line's quantity. Zero removes the line;
// unknown product IDs leave the cart untouched.
func (srv *cartService) UpdateItemQuantity(ctx context.Context, sessionID, productID string, quantity int) (*usecase.CartOutput, error) {
	cart, err := srv.cartRepo.Find(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	if err := cart.SetQuantity(productID, quantity); err != nil {
		if errors.Is(err, entity.ErrInvalidQuantity) {
			return nil, domainerrors.ErrInvalidQuantity.WithDetails("quantity must not be negative")
		}

		return nil, errors.Wrap(err, "failed to update cart quantity")
	}

	if err := srv.cartRepo.Save(ctx, sessionID, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	srv.log(ctx).Debug("Cart quantity updated",
		slog.String("productID", productID),
		slog.Int("quantity", quantity),
	)

	return cartOutput(cart), nil
}

// RemoveItem deletes a line from the cart. Absent lines are a no-op.
func (srv *cartService) RemoveItem(ctx context.Context, sessionID, productID string) (*usecase.CartOutput, error) {
	cart, err := srv.cartRepo.Find(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart.Remove(productID)

	if err := srv.cartRepo.Save(ctx, sessionID, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	srv.log(ctx).Debug("Cart item removed", slog.String("productID", productID))

	return cartOutput(cart), nil
}

func cartOutput(cart *entity.Cart) *usecase.CartOutput {
	return &usecase.CartOutput{
		Cart:      cart,
		Summary:   cart.Summarize(),
		ItemCount: cart.ItemCount(),
	}
}
