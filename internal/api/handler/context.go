package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
	"github.com/caffeinepub/ryk-cart/internal/core/identity"
)

// ctxSession extracts the session injected by the Identity middleware and
// performs a fast-fail check before any service call: the principal must be
// non-empty (presence proves the middleware ran and the caller is signed in).
func ctxSession(c echo.Context) (identity.Session, error) {
	sess := identity.FromContext(c.Request().Context())
	if sess.Identity.IsAnonymous() {
		return identity.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return sess, nil
}

// productIDParam parses the :id path segment into a ProductID.
func productIDParam(c echo.Context) (domain.ProductID, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	return domain.ProductID(id), nil
}
