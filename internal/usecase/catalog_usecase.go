package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase exposes the backend's product catalog for browsing.
// Implementations may cache; products are read-only reference data here.
type CatalogUsecase interface {
	// ListProducts returns the full catalog.
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// GetProduct returns a single product by ID.
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
}
