package ports

import (
	"context"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
)

// ProfileService exposes the caller's display profile.
type ProfileService interface {
	// Profile returns nil when the caller has not saved a profile yet.
	Profile(ctx context.Context) (*domain.UserProfile, error)
	// Role returns the caller's server-assigned role.
	Role(ctx context.Context) (domain.UserRole, error)
	// SaveProfile creates the profile on first save and overwrites it after.
	SaveProfile(ctx context.Context, profile domain.UserProfile) error
	// Logout clears the caller's session-scoped gateway state (admin unlock
	// flag and per-identity cache keys). The identity provider session
	// itself is ended by the client.
	Logout(ctx context.Context) error
}
