package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, resp.Error
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not authenticated", domain.ErrNotAuthenticated, http.StatusUnauthorized},
		{"wrong password", domain.ErrWrongPassword, http.StatusUnauthorized},
		{"not authorized", domain.ErrNotAuthorized, http.StatusForbidden},
		{"gate locked", domain.ErrGateLocked, http.StatusForbidden},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound},
		{"bootstrap claimed", domain.ErrBootstrapClaimed, http.StatusConflict},
		{"bootstrap unavailable", domain.ErrBootstrapUnavailable, http.StatusConflict},
		{"invalid quantity", domain.ErrInvalidQuantity, http.StatusBadRequest},
		{"invalid redemption", domain.ErrInvalidRedemption, http.StatusBadRequest},
		{"insufficient points", domain.ErrInsufficientPoints, http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := render(t, tc.err)
			if code != tc.code {
				t.Errorf("expected %d, got %d", tc.code, code)
			}
			if msg == "" {
				t.Error("expected a non-empty error message")
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("fetch product 9"), domain.ErrProductNotFound)
	code, _ := render(t, wrapped)
	if code != http.StatusNotFound {
		t.Errorf("expected 404 for wrapped error, got %d", code)
	}
}

func TestErrorHandler_BackendErrorKeepsMessage(t *testing.T) {
	code, msg := render(t, domain.NewBackendError("redeem_points", "Insufficient stock for mystery box"))
	if code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", code)
	}
	if msg != "Insufficient stock for mystery box" {
		t.Errorf("backend message must be preserved verbatim, got %q", msg)
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	code, msg := render(t, echo.NewHTTPError(http.StatusTeapot, "short and stout"))
	if code != http.StatusTeapot {
		t.Errorf("expected 418, got %d", code)
	}
	if msg != "short and stout" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_UnknownErrorIsGeneric(t *testing.T) {
	code, msg := render(t, errors.New("redis exploded: secret details"))
	if code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Errorf("internal details must not leak, got %q", msg)
	}
}
