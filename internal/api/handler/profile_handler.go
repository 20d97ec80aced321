package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
	"github.com/caffeinepub/ryk-cart/internal/core/ports"
)

// ProfileHandler handles HTTP requests for the caller's display profile.
type ProfileHandler struct {
	profile ports.ProfileService
}

func NewProfileHandler(profile ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

type saveProfileRequest struct {
	Name string `json:"name" validate:"required"`
}

type profileResponse struct {
	Profile *domain.UserProfile `json:"profile"`
}

// Get handles GET /v1/profile. The profile field is null until the caller
// saves one.
//
// @Summary      Get the caller's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	if _, err := ctxSession(c); err != nil {
		return err
	}

	profile, err := h.profile.Profile(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{Profile: profile})
}

// Put handles PUT /v1/profile.
//
// @Summary      Create or overwrite the caller's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveProfileRequest  true  "Profile fields"
// @Success      204   "saved"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/profile [put]
func (h *ProfileHandler) Put(c echo.Context) error {
	if _, err := ctxSession(c); err != nil {
		return err
	}

	var req saveProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.profile.SaveProfile(c.Request().Context(), domain.UserProfile{Name: req.Name}); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
