package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
	"github.com/caffeinepub/ryk-cart/internal/core/ports"
)

const (
	productsTTL = time.Minute
	productTTL  = time.Minute
)

// CatalogService serves product reads through the query cache.
type CatalogService struct {
	backend ports.Backend
	cache   ports.QueryCache
	logger  zerolog.Logger
}

func NewCatalogService(backend ports.Backend, cache ports.QueryCache, logger zerolog.Logger) *CatalogService {
	return &CatalogService{backend: backend, cache: cache, logger: logger}
}

// ListProducts returns every product known to the backend, cached under the
// "products" key. Cache errors degrade to a direct backend read.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var cached []domain.Product
	err := s.cache.Get(ctx, ports.KeyProducts, &cached)
	if err == nil {
		return cached, nil
	}
	if err != ports.ErrCacheMiss {
		s.logger.Warn().Err(err).Msg("product cache read failed, falling back to backend")
	}

	products, err := s.backend.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, ports.KeyProducts, products, productsTTL); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache product list")
	}
	return products, nil
}

// ListActiveProducts returns the storefront view of the catalog: only
// products with the active flag set.
func (s *CatalogService) ListActiveProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active, nil
}

// GetProduct fetches one product by ID. Inactive products are returned too:
// the active flag hides a product from the catalog, not from direct access.
func (s *CatalogService) GetProduct(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	key := ports.ProductKey(int64(id))

	var cached domain.Product
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if err != ports.ErrCacheMiss {
		s.logger.Warn().Err(err).Int64("product_id", int64(id)).Msg("product cache read failed, falling back to backend")
	}

	product, err := s.backend.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, product, productTTL); err != nil {
		s.logger.Warn().Err(err).Int64("product_id", int64(id)).Msg("failed to cache product")
	}
	return product, nil
}
