package ports

import (
	"context"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
)

// CatalogService serves product reads for the storefront and the admin
// panel, backed by the query cache.
type CatalogService interface {
	// ListProducts returns every product, active or not (admin view).
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// ListActiveProducts returns only catalog-visible products.
	ListActiveProducts(ctx context.Context) ([]domain.Product, error)
	// GetProduct fetches a single product by ID. The active flag controls
	// catalog visibility only, so inactive products are still returned.
	GetProduct(ctx context.Context, id domain.ProductID) (*domain.Product, error)
}
