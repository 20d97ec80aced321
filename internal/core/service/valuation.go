package service

import (
	"github.com/caffeinepub/ryk-cart/internal/core/domain"
	"github.com/caffeinepub/ryk-cart/internal/core/ports"
)

// Valuate joins cart items to their product snapshots and derives the
// display totals and points projection. It is a pure function of its
// inputs: deterministic, no hidden state, never fails.
//
// Items whose product is not in the snapshot (deleted, or not yet loaded)
// are excluded from the result rather than valued at zero. Prices and
// quantities arrive server-validated as non-negative integers; no clamping
// happens here.
func Valuate(items []domain.CartItem, products []domain.Product) ports.CartSummary {
	byID := make(map[domain.ProductID]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	summary := ports.CartSummary{Lines: []ports.CartLine{}}
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		line := ports.CartLine{
			Product:    product,
			Quantity:   item.Quantity,
			LineTotal:  product.Price * item.Quantity,
			LinePoints: product.Points * item.Quantity,
		}
		summary.Lines = append(summary.Lines, line)
		summary.Subtotal += line.LineTotal
		summary.PointsToEarn += line.LinePoints
	}
	return summary
}
