package datasources

import (
	"context"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

// ProductFetcher fetches products by ID, active or not. Unknown IDs are skipped and the
// result order is not guaranteed.
type ProductFetcher interface {
	FetchProductsByID(ctx context.Context, ids []string) ([]domain.Product, error)
}

// ActiveProductLister lists active products of the catalog.
type ActiveProductLister interface {
	ListActiveProducts(ctx context.Context, options domain.ProductListOptions) ([]domain.Product, error)
}

// CatalogRepository combines all catalog operations.
type CatalogRepository interface {
	ProductFetcher
	ActiveProductLister
}
