package handler

import (
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
	"github.com/caffeinepub/ryk-cart/internal/core/identity"
)

// newTestContext builds an Echo context with the validator installed and,
// when principal is non-empty, an identity session attached the way the
// Identity middleware would.
func newTestContext(method, path, body, principal string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if principal != "" {
		sess := identity.Session{
			Identity: domain.Identity{Principal: principal},
			Token:    "test-token",
		}
		req = req.WithContext(identity.WithSession(req.Context(), sess))
	}

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// httpCode extracts the status code from an error returned by a handler.
func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}
