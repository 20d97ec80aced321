package ports

import (
	"context"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
)

// RewardsStatus is the caller's loyalty state as shown on the rewards page.
type RewardsStatus struct {
	Balance      int64 `json:"balance"`
	Threshold    int64 `json:"threshold"`
	CanRedeem    bool  `json:"can_redeem"`
	PointsNeeded int64 `json:"points_needed"`
}

// RewardsService exposes the caller's points balance and redemption.
type RewardsService interface {
	Status(ctx context.Context) (*RewardsStatus, error)
	// Redeem spends points on the given reward. Calls below the redemption
	// threshold are rejected without contacting the backend; the backend
	// independently enforces the same rule.
	Redeem(ctx context.Context, reward domain.Redemption) error
}
