package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultCatalogCacheSize = 1024
	defaultCatalogCacheTTL  = 5 * time.Minute

	catalogListKey = "catalog"
)

// catalogService implements the CatalogUsecase interface. Products are
// read-only reference data owned by the backend, so they are served through
// an expiring LRU cache and re-fetched only after the TTL lapses.
type catalogService struct {
	backend   service.BackendGateway
	listCache *expirable.LRU[string, []entity.Product]
	itemCache *expirable.LRU[string, entity.Product]
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Backend service.BackendGateway
	Config  *config.Config
	Logger  *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	size := defaultCatalogCacheSize
	ttl := defaultCatalogCacheTTL
	if params.Config != nil && params.Config.Catalog != nil {
		if params.Config.Catalog.CacheSize > 0 {
			size = params.Config.Catalog.CacheSize
		}
		if params.Config.Catalog.CacheTTL > 0 {
			ttl = params.Config.Catalog.CacheTTL
		}
	}

	return &catalogService{
		backend:   params.Backend,
		listCache: expirable.NewLRU[string, []entity.Product](1, nil, ttl),
		itemCache: expirable.NewLRU[string, entity.Product](size, nil, ttl),
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the catalog, served from cache while fresh.
func (srv *catalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	if products, ok := srv.listCache.Get(catalogListKey); ok {
		return products, nil
	}

	products, err := srv.backend.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	srv.listCache.Add(catalogListKey, products)
	for _, product := range products {
		srv.itemCache.Add(product.ID, product)
	}

	srv.log(ctx).Debug("Catalog refreshed", slog.Int("products", len(products)))

	return products, nil
}

// GetProduct returns a single product, preferring the cache.
func (srv *catalogService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	if product, ok := srv.itemCache.Get(productID); ok {
		return &product, nil
	}

	product, err := srv.backend.GetProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}
	if product == nil {
		return nil, domainerrors.ErrProductNotFound.WithDetails(productID)
	}

	srv.itemCache.Add(product.ID, *product)

	return product, nil
}
