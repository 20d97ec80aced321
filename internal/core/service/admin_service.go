package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
	"github.com/caffeinepub/ryk-cart/internal/core/identity"
	"github.com/caffeinepub/ryk-cart/internal/core/ports"
)

const (
	roleTTL      = time.Minute
	bootstrapTTL = 30 * time.Second
)

// AdminService guards and performs product-management operations.
//
// The gate is layered: identity presence, then the server-reported admin
// role, then the local password unlock. The unlock is UX friction only —
// the backend authorizes every admin call with its own role check, so a
// bypassed gate still cannot mutate anything.
type AdminService struct {
	backend ports.Backend
	cache   ports.QueryCache
	unlocks ports.UnlockStore
	// gateHash is the bcrypt hash of the local gate password.
	gateHash string
	logger   zerolog.Logger
}

func NewAdminService(backend ports.Backend, cache ports.QueryCache, unlocks ports.UnlockStore, gateHash string, logger zerolog.Logger) *AdminService {
	return &AdminService{
		backend:  backend,
		cache:    cache,
		unlocks:  unlocks,
		gateHash: gateHash,
		logger:   logger,
	}
}

// Gate evaluates the admin-gate state machine for the caller. Every error
// resolves to the most restrictive state reachable from where it occurred:
// an unknown role degrades to non-admin, an unknown unlock flag to locked.
func (s *AdminService) Gate(ctx context.Context) (*ports.GateStatus, error) {
	caller := identity.Caller(ctx)
	if caller.IsAnonymous() {
		return &ports.GateStatus{State: domain.GateUnauthenticated}, nil
	}

	role, err := s.callerRole(ctx, caller.Principal)
	if err != nil {
		s.logger.Warn().Err(err).Str("principal", caller.Principal).Msg("role check failed, gate degrades to non-admin")
		role = domain.RoleUser
	}
	if role != domain.RoleAdmin {
		return &ports.GateStatus{
			State:              domain.GateNonAdmin,
			BootstrapAvailable: s.bootstrapAvailable(ctx),
		}, nil
	}

	unlocked, err := s.unlocks.IsUnlocked(ctx, caller.Principal)
	if err != nil {
		s.logger.Warn().Err(err).Str("principal", caller.Principal).Msg("unlock check failed, gate stays locked")
		unlocked = false
	}
	state := domain.GateAdminLocked
	if unlocked {
		state = domain.GateAdminUnlocked
	}
	return &ports.GateStatus{State: state}, nil
}

// Unlock checks the local gate password and records the session unlock flag.
// The server role check runs first: a correct password never unlocks the
// panel for a caller the backend does not report as admin.
func (s *AdminService) Unlock(ctx context.Context, password string) error {
	caller, err := s.requireAdmin(ctx)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(s.gateHash), []byte(password)) != nil {
		return domain.ErrWrongPassword
	}
	if err := s.unlocks.SetUnlocked(ctx, caller.Principal); err != nil {
		return err
	}

	s.logger.Info().Str("principal", caller.Principal).Msg("admin panel unlocked")
	return nil
}

// Lock clears the session unlock flag.
func (s *AdminService) Lock(ctx context.Context) error {
	caller := identity.Caller(ctx)
	if caller.IsAnonymous() {
		return domain.ErrNotAuthenticated
	}
	return s.unlocks.Clear(ctx, caller.Principal)
}

// ClaimBootstrap submits the one-time bootstrap password to the backend.
// On success the caller's server-side role becomes admin, so the cached
// role and bootstrap availability are dropped and re-fetched on the next
// gate check. Failures are classified but never grant access.
func (s *AdminService) ClaimBootstrap(ctx context.Context, password string) error {
	caller := identity.Caller(ctx)
	if caller.IsAnonymous() {
		return domain.ErrNotAuthenticated
	}

	if err := s.backend.RequestBootstrap(ctx, password); err != nil {
		switch {
		case errors.Is(err, domain.ErrBootstrapClaimed):
			return domain.ErrBootstrapClaimed
		case errors.Is(err, domain.ErrNotAuthorized):
			return domain.ErrWrongPassword
		default:
			return err
		}
	}

	if err := s.cache.Invalidate(ctx, ports.RoleKey(caller.Principal), ports.KeyBootstrap); err != nil {
		s.logger.Warn().Err(err).Msg("role cache invalidation failed after bootstrap")
	}

	s.logger.Info().Str("principal", caller.Principal).Msg("bootstrap claimed, caller promoted to admin")
	return nil
}

// CreateProduct creates a product and invalidates the cached collection so
// the next read re-fetches the authoritative list.
func (s *AdminService) CreateProduct(ctx context.Context, fields ports.ProductFields) (domain.ProductID, error) {
	if _, err := s.requireUnlockedAdmin(ctx); err != nil {
		return 0, err
	}

	id, err := s.backend.CreateProduct(ctx, fields)
	if err != nil {
		return 0, err
	}
	s.invalidateProducts(ctx, id)

	s.logger.Info().Int64("product_id", int64(id)).Str("name", fields.Name).Msg("product created")
	return id, nil
}

// UpdateProduct replaces a product's fields.
func (s *AdminService) UpdateProduct(ctx context.Context, id domain.ProductID, fields ports.ProductFields, isActive bool) error {
	if _, err := s.requireUnlockedAdmin(ctx); err != nil {
		return err
	}

	if err := s.backend.UpdateProduct(ctx, id, fields, isActive); err != nil {
		return err
	}
	s.invalidateProducts(ctx, id)

	s.logger.Info().Int64("product_id", int64(id)).Msg("product updated")
	return nil
}

// ToggleProductActive flips a product's catalog visibility.
func (s *AdminService) ToggleProductActive(ctx context.Context, id domain.ProductID) error {
	if _, err := s.requireUnlockedAdmin(ctx); err != nil {
		return err
	}

	if err := s.backend.ToggleProductActive(ctx, id); err != nil {
		return err
	}
	s.invalidateProducts(ctx, id)

	s.logger.Info().Int64("product_id", int64(id)).Msg("product visibility toggled")
	return nil
}

// requireAdmin enforces the first two gate layers: identity presence and
// the server-reported admin role.
func (s *AdminService) requireAdmin(ctx context.Context) (domain.Identity, error) {
	caller := identity.Caller(ctx)
	if caller.IsAnonymous() {
		return domain.Identity{}, domain.ErrNotAuthenticated
	}
	role, err := s.callerRole(ctx, caller.Principal)
	if err != nil {
		// Fail closed: unknown role never passes the admin layer.
		return domain.Identity{}, domain.ErrNotAuthorized
	}
	if role != domain.RoleAdmin {
		return domain.Identity{}, domain.ErrNotAuthorized
	}
	return caller, nil
}

// requireUnlockedAdmin enforces all three gate layers.
func (s *AdminService) requireUnlockedAdmin(ctx context.Context) (domain.Identity, error) {
	caller, err := s.requireAdmin(ctx)
	if err != nil {
		return domain.Identity{}, err
	}
	unlocked, err := s.unlocks.IsUnlocked(ctx, caller.Principal)
	if err != nil || !unlocked {
		return domain.Identity{}, domain.ErrGateLocked
	}
	return caller, nil
}

func (s *AdminService) callerRole(ctx context.Context, principal string) (domain.UserRole, error) {
	key := ports.RoleKey(principal)

	var cached domain.UserRole
	err := s.cache.Get(ctx, key, &cached)
	if err == nil && cached.Valid() {
		return cached, nil
	}
	if err != nil && err != ports.ErrCacheMiss {
		s.logger.Warn().Err(err).Msg("role cache read failed, falling back to backend")
	}

	role, err := s.backend.GetCallerUserRole(ctx)
	if err != nil {
		return "", err
	}
	if err := s.cache.Set(ctx, key, role, roleTTL); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache role")
	}
	return role, nil
}

func (s *AdminService) bootstrapAvailable(ctx context.Context) bool {
	var cached bool
	err := s.cache.Get(ctx, ports.KeyBootstrap, &cached)
	if err == nil {
		return cached
	}

	available, err := s.backend.IsBootstrapAvailable(ctx)
	if err != nil {
		// Unknown availability reads as unavailable; the claim itself
		// still validates server-side.
		return false
	}
	if err := s.cache.Set(ctx, ports.KeyBootstrap, available, bootstrapTTL); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache bootstrap availability")
	}
	return available
}

func (s *AdminService) invalidateProducts(ctx context.Context, id domain.ProductID) {
	if err := s.cache.Invalidate(ctx, ports.KeyProducts, ports.ProductKey(int64(id))); err != nil {
		s.logger.Warn().Err(err).Msg("product cache invalidation failed")
	}
}
