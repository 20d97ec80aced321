package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caffeinepub/ryk-cart/internal/core/ports"
)

// AuthHandler handles session introspection and logout. The identity
// provider itself lives outside the gateway; these endpoints only expose
// and clear the gateway-side view of the session.
type AuthHandler struct {
	profile ports.ProfileService
}

func NewAuthHandler(profile ports.ProfileService) *AuthHandler {
	return &AuthHandler{profile: profile}
}

type sessionResponse struct {
	Principal string `json:"principal"`
	Role      string `json:"role"`
}

// Session handles GET /v1/auth/session.
//
// @Summary      Get the caller's identity and server-assigned role
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	role, err := h.profile.Role(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{
		Principal: sess.Identity.Principal,
		Role:      string(role),
	})
}

// Logout handles POST /v1/auth/logout. It clears the gateway-side session
// state (admin unlock flag, per-identity cache keys); ending the provider
// session is the client's job.
//
// @Summary      Clear gateway-side session state
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204  "logged out"
// @Failure      401  {object}  map[string]string
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, err := ctxSession(c); err != nil {
		return err
	}

	if err := h.profile.Logout(c.Request().Context()); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
