package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
	"github.com/caffeinepub/ryk-cart/internal/core/identity"
	"github.com/caffeinepub/ryk-cart/internal/core/ports"
)

const cartTTL = 30 * time.Second

// CartService exposes the caller's cart, valued against the catalog
// snapshot, and checkout. The backend owns the cart; the gateway never
// mutates it locally.
type CartService struct {
	backend ports.Backend
	catalog ports.CatalogService
	cache   ports.QueryCache
	logger  zerolog.Logger
}

func NewCartService(backend ports.Backend, catalog ports.CatalogService, cache ports.QueryCache, logger zerolog.Logger) *CartService {
	return &CartService{backend: backend, catalog: catalog, cache: cache, logger: logger}
}

// GetCart returns the caller's cart joined to the current product snapshot.
// Both snapshots come from the same request, so valuation is consistent
// with what the caller sees; lines whose product has disappeared are
// excluded by Valuate.
func (s *CartService) GetCart(ctx context.Context) (*ports.CartSummary, error) {
	caller := identity.Caller(ctx)
	if caller.IsAnonymous() {
		return nil, domain.ErrNotAuthenticated
	}

	items, err := s.cartItems(ctx, caller.Principal)
	if err != nil {
		return nil, err
	}
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	summary := Valuate(items, products)
	return &summary, nil
}

// AddToCart adds quantity units of a product to the caller's cart and
// invalidates the cached cart.
func (s *CartService) AddToCart(ctx context.Context, id domain.ProductID, quantity int64) error {
	caller := identity.Caller(ctx)
	if caller.IsAnonymous() {
		return domain.ErrNotAuthenticated
	}
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	if err := s.backend.AddToCart(ctx, id, quantity); err != nil {
		return err
	}
	s.invalidate(ctx, ports.CartKey(caller.Principal))

	s.logger.Info().
		Str("principal", caller.Principal).
		Int64("product_id", int64(id)).
		Int64("quantity", quantity).
		Msg("item added to cart")
	return nil
}

// RemoveFromCart removes the product's line from the caller's cart.
func (s *CartService) RemoveFromCart(ctx context.Context, id domain.ProductID) error {
	caller := identity.Caller(ctx)
	if caller.IsAnonymous() {
		return domain.ErrNotAuthenticated
	}

	if err := s.backend.RemoveFromCart(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, ports.CartKey(caller.Principal))

	s.logger.Info().
		Str("principal", caller.Principal).
		Int64("product_id", int64(id)).
		Msg("item removed from cart")
	return nil
}

// PlaceOrder asks the backend to turn the caller's cart into an order. The
// backend computes the authoritative totals and points and clears the cart;
// the returned summary is the valuation the caller confirmed, for display
// on the confirmation screen.
func (s *CartService) PlaceOrder(ctx context.Context) (*ports.CartSummary, error) {
	caller := identity.Caller(ctx)
	if caller.IsAnonymous() {
		return nil, domain.ErrNotAuthenticated
	}

	summary, err := s.GetCart(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.backend.PlaceOrder(ctx); err != nil {
		return nil, err
	}
	// The order changed both the cart and the points balance server-side.
	s.invalidate(ctx, ports.CartKey(caller.Principal), ports.PointsKey(caller.Principal))

	s.logger.Info().
		Str("principal", caller.Principal).
		Int64("subtotal", summary.Subtotal).
		Int64("points_to_earn", summary.PointsToEarn).
		Msg("order placed")
	return summary, nil
}

func (s *CartService) cartItems(ctx context.Context, principal string) ([]domain.CartItem, error) {
	key := ports.CartKey(principal)

	var cached []domain.CartItem
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if err != ports.ErrCacheMiss {
		s.logger.Warn().Err(err).Msg("cart cache read failed, falling back to backend")
	}

	items, err := s.backend.GetCart(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, items, cartTTL); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache cart")
	}
	return items, nil
}

func (s *CartService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.logger.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
