package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
	"github.com/caffeinepub/ryk-cart/internal/core/identity"
	"github.com/caffeinepub/ryk-cart/internal/core/ports"
)

const pointsTTL = time.Minute

// RewardsService exposes the caller's loyalty points and redemption.
type RewardsService struct {
	backend ports.Backend
	cache   ports.QueryCache
	logger  zerolog.Logger
}

func NewRewardsService(backend ports.Backend, cache ports.QueryCache, logger zerolog.Logger) *RewardsService {
	return &RewardsService{backend: backend, cache: cache, logger: logger}
}

// Status returns the caller's balance and whether redemption is open.
func (s *RewardsService) Status(ctx context.Context) (*ports.RewardsStatus, error) {
	caller := identity.Caller(ctx)
	if caller.IsAnonymous() {
		return nil, domain.ErrNotAuthenticated
	}

	balance, err := s.balance(ctx, caller.Principal)
	if err != nil {
		return nil, err
	}

	needed := domain.RedemptionThreshold - balance
	if needed < 0 {
		needed = 0
	}
	return &ports.RewardsStatus{
		Balance:      balance,
		Threshold:    domain.RedemptionThreshold,
		CanRedeem:    balance >= domain.RedemptionThreshold,
		PointsNeeded: needed,
	}, nil
}

// Redeem spends points on the given reward. Below-threshold calls are
// rejected here, before any backend dispatch; the backend enforces the same
// threshold on its side.
func (s *RewardsService) Redeem(ctx context.Context, reward domain.Redemption) error {
	caller := identity.Caller(ctx)
	if caller.IsAnonymous() {
		return domain.ErrNotAuthenticated
	}
	if !reward.Valid() {
		return domain.ErrInvalidRedemption
	}

	balance, err := s.balance(ctx, caller.Principal)
	if err != nil {
		return err
	}
	if balance < domain.RedemptionThreshold {
		return domain.ErrInsufficientPoints
	}

	if err := s.backend.RedeemPoints(ctx, reward); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, ports.PointsKey(caller.Principal)); err != nil {
		s.logger.Warn().Err(err).Msg("points cache invalidation failed")
	}

	s.logger.Info().
		Str("principal", caller.Principal).
		Str("kind", string(reward.Kind)).
		Msg("points redeemed")
	return nil
}

func (s *RewardsService) balance(ctx context.Context, principal string) (int64, error) {
	key := ports.PointsKey(principal)

	var cached int64
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if err != ports.ErrCacheMiss {
		s.logger.Warn().Err(err).Msg("points cache read failed, falling back to backend")
	}

	balance, err := s.backend.GetPointsBalance(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.cache.Set(ctx, key, balance, pointsTTL); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache points balance")
	}
	return balance, nil
}
