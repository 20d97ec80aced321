package ports

import (
	"context"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
)

// CartLine is a valued cart line: the cart item joined to its product
// snapshot, with the derived per-line totals.
type CartLine struct {
	Product    domain.Product `json:"product"`
	Quantity   int64          `json:"quantity"`
	LineTotal  int64          `json:"line_total"`
	LinePoints int64          `json:"line_points"`
}

// CartSummary is the valuation of a cart against a product snapshot.
// Items whose product is no longer known are excluded, not valued at zero.
type CartSummary struct {
	Lines        []CartLine `json:"lines"`
	Subtotal     int64      `json:"subtotal"`
	PointsToEarn int64      `json:"points_to_earn"`
}

// CartService exposes the caller's cart and checkout.
type CartService interface {
	// GetCart returns the caller's cart valued against the current product
	// snapshot.
	GetCart(ctx context.Context) (*CartSummary, error)
	AddToCart(ctx context.Context, id domain.ProductID, quantity int64) error
	RemoveFromCart(ctx context.Context, id domain.ProductID) error
	// PlaceOrder returns the valuation the caller confirmed; the backend
	// computes the authoritative totals and clears the cart.
	PlaceOrder(ctx context.Context) (*CartSummary, error)
}
