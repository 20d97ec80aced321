package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caffeinepub/ryk-cart/internal/api/metrics"
	"github.com/caffeinepub/ryk-cart/internal/core/domain"
	"github.com/caffeinepub/ryk-cart/internal/core/ports"
)

// RewardsHandler handles HTTP requests for the loyalty points program.
type RewardsHandler struct {
	rewards ports.RewardsService
}

func NewRewardsHandler(rewards ports.RewardsService) *RewardsHandler {
	return &RewardsHandler{rewards: rewards}
}

type redeemRequest struct {
	Kind string `json:"kind" validate:"required,oneof=cashback mystery_box"`
	// Amount is the cashback amount; required for kind "cashback".
	Amount int64 `json:"amount,omitempty"`
	// Description names the mystery box gift; required for kind "mystery_box".
	Description string `json:"description,omitempty"`
}

// Status handles GET /v1/rewards.
//
// @Summary      Get the caller's points balance and redemption eligibility
// @Tags         rewards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.RewardsStatus
// @Failure      401  {object}  map[string]string
// @Router       /v1/rewards [get]
func (h *RewardsHandler) Status(c echo.Context) error {
	if _, err := ctxSession(c); err != nil {
		return err
	}

	status, err := h.rewards.Status(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, status)
}

// Redeem handles POST /v1/rewards/redeem.
//
// @Summary      Redeem points for a reward
// @Tags         rewards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      redeemRequest  true  "Redemption choice"
// @Success      204   "redeemed"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/rewards/redeem [post]
func (h *RewardsHandler) Redeem(c echo.Context) error {
	if _, err := ctxSession(c); err != nil {
		return err
	}

	var req redeemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var reward domain.Redemption
	switch domain.RedemptionKind(req.Kind) {
	case domain.RedemptionCashback:
		reward = domain.CashbackRedemption(req.Amount)
	case domain.RedemptionMysteryBox:
		reward = domain.MysteryBoxRedemption(req.Description)
	}

	if err := h.rewards.Redeem(c.Request().Context(), reward); err != nil {
		return err
	}

	metrics.PointsRedeemedTotal.WithLabelValues(req.Kind).Inc()
	return c.NoContent(http.StatusNoContent)
}
