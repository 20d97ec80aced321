package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
	"github.com/caffeinepub/ryk-cart/internal/core/identity"
	"github.com/caffeinepub/ryk-cart/internal/core/ports"
)

const profileTTL = 5 * time.Minute

// ProfileService exposes the caller's display profile and logout cleanup.
type ProfileService struct {
	backend ports.Backend
	cache   ports.QueryCache
	unlocks ports.UnlockStore
	logger  zerolog.Logger
}

func NewProfileService(backend ports.Backend, cache ports.QueryCache, unlocks ports.UnlockStore, logger zerolog.Logger) *ProfileService {
	return &ProfileService{backend: backend, cache: cache, unlocks: unlocks, logger: logger}
}

// cachedProfile wraps the nullable profile so that "fetched, none saved yet"
// is cacheable and distinguishable from a cache miss.
type cachedProfile struct {
	Profile *domain.UserProfile `json:"profile"`
}

// Profile returns the caller's profile, or nil when none has been saved.
func (s *ProfileService) Profile(ctx context.Context) (*domain.UserProfile, error) {
	caller := identity.Caller(ctx)
	if caller.IsAnonymous() {
		return nil, domain.ErrNotAuthenticated
	}
	key := ports.ProfileKey(caller.Principal)

	var cached cachedProfile
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		return cached.Profile, nil
	}
	if err != ports.ErrCacheMiss {
		s.logger.Warn().Err(err).Msg("profile cache read failed, falling back to backend")
	}

	profile, err := s.backend.GetCallerUserProfile(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, cachedProfile{Profile: profile}, profileTTL); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache profile")
	}
	return profile, nil
}

// Role returns the caller's server-assigned role. It shares the cached role
// entry with the admin gate, so a bootstrap promotion or logout refreshes
// both views together.
func (s *ProfileService) Role(ctx context.Context) (domain.UserRole, error) {
	caller := identity.Caller(ctx)
	if caller.IsAnonymous() {
		return "", domain.ErrNotAuthenticated
	}
	key := ports.RoleKey(caller.Principal)

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

// SaveProfile creates the caller's profile on first save and overwrites it
// afterwards. The cached profile is invalidated so the next read re-fetches.
func (s *ProfileService) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	caller := identity.Caller(ctx)
	if caller.IsAnonymous() {
		return domain.ErrNotAuthenticated
	}

	profile.Name = strings.TrimSpace(profile.Name)
	if err := s.backend.SaveCallerUserProfile(ctx, profile); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, ports.ProfileKey(caller.Principal)); err != nil {
		s.logger.Warn().Err(err).Msg("profile cache invalidation failed")
	}

	s.logger.Info().Str("principal", caller.Principal).Msg("profile saved")
	return nil
}

// Logout clears the session-scoped gateway state for the caller: the admin
// unlock flag and every per-identity cache key. The provider session itself
// is ended by the client.
func (s *ProfileService) Logout(ctx context.Context) error {
	caller := identity.Caller(ctx)
	if caller.IsAnonymous() {
		return domain.ErrNotAuthenticated
	}

	if err := s.unlocks.Clear(ctx, caller.Principal); err != nil {
		return err
	}
	err := s.cache.Invalidate(ctx,
		ports.CartKey(caller.Principal),
		ports.PointsKey(caller.Principal),
		ports.ProfileKey(caller.Principal),
		ports.RoleKey(caller.Principal),
	)
	if err != nil {
		s.logger.Warn().Err(err).Msg("logout cache invalidation failed")
	}

	s.logger.Info().Str("principal", caller.Principal).Msg("session state cleared")
	return nil
}
