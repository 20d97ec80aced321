package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, domain.ErrWrongPassword):
		return http.StatusUnauthorized, "wrong password"
	case errors.Is(err, domain.ErrNotAuthorized):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrGateLocked):
		return http.StatusForbidden, "admin panel is locked"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, domain.ErrBootstrapClaimed):
		return http.StatusConflict, "admin access already claimed"
	case errors.Is(err, domain.ErrBootstrapUnavailable):
		return http.StatusConflict, "admin bootstrap is not available"
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, "quantity must be at least 1"
	case errors.Is(err, domain.ErrInvalidRedemption):
		return http.StatusBadRequest, "invalid redemption option"
	case errors.Is(err, domain.ErrInsufficientPoints):
		return http.StatusUnprocessableEntity, "not enough points to redeem"
	}

	// Backend rejections keep their original message so the client can
	// surface the exact reason reported upstream.
	var be *domain.BackendError
	if errors.As(err, &be) {
		log.Warn().
			Err(err).
			Str("op", be.Op).
			Str("path", c.Path()).
			Msg("backend rejected request")
		return http.StatusBadGateway, be.Message
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
