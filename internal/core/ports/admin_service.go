package ports

import (
	"context"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
)

// GateStatus is the resolved admin-gate view for the caller.
type GateStatus struct {
	State domain.GateState `json:"state"`
	// BootstrapAvailable is only meaningful in the non-admin state: it
	// reports whether the one-time bootstrap claim is still open.
	BootstrapAvailable bool `json:"bootstrap_available"`
}

// AdminService guards and performs product-management operations.
//
// Access is layered: an identity session must exist, the backend must
// report the admin role, and the session must have passed the local
// password gate. The local gate is UX friction only — the backend's own
// role check authorizes every mutation regardless of the unlock flag.
type AdminService interface {
	// Gate evaluates the admin-gate state machine for the caller. It fails
	// closed: errors resolve to the most restrictive reachable state.
	Gate(ctx context.Context) (*GateStatus, error)
	// Unlock checks the local gate password and records the session unlock
	// flag on success.
	Unlock(ctx context.Context, password string) error
	// Lock clears the session unlock flag.
	Lock(ctx context.Context) error
	// ClaimBootstrap performs the one-time bootstrap claim. Failures are
	// classified (already claimed, wrong password, generic); success
	// invalidates the cached role so the next gate check re-fetches it.
	ClaimBootstrap(ctx context.Context, password string) error

	CreateProduct(ctx context.Context, fields ProductFields) (domain.ProductID, error)
	UpdateProduct(ctx context.Context, id domain.ProductID, fields ProductFields, isActive bool) error
	ToggleProductActive(ctx context.Context, id domain.ProductID) error
}
