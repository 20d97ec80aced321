// Package metrics defines and registers all custom Prometheus metrics for
// the storefront gateway. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at import time
// via promauto; the HTTP layer exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// OrdersPlacedTotal counts successfully placed orders.
var OrdersPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed through the gateway.",
	},
)

// PointsRedeemedTotal counts successful reward redemptions.
// Label:
//   - kind: the redemption variant ("cashback" or "mystery_box")
var PointsRedeemedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "points_redeemed_total",
		Help:      "Total number of reward redemptions, by kind.",
	},
	[]string{"kind"},
)

// ProductWritesTotal counts admin product mutations that reached the backend.
// Label:
//   - op: "create", "update", or "toggle"
var ProductWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_writes_total",
		Help:      "Total number of admin product mutations, by operation.",
	},
	[]string{"op"},
)

// GateUnlockAttemptsTotal counts admin-gate unlock attempts.
// Label:
//   - result: "ok", "wrong_password", or "denied"
var GateUnlockAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_unlock_attempts_total",
		Help:      "Total number of admin-gate unlock attempts, by result.",
	},
	[]string{"result"},
)

// BackendErrorsTotal counts backend calls the gateway had to surface as
// failures to the client.
// Label:
//   - op: the backend operation that failed (e.g. "place_order")
var BackendErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_errors_total",
		Help:      "Total number of backend call failures surfaced to clients.",
	},
	[]string{"op"},
)
