package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
	"github.com/caffeinepub/ryk-cart/internal/core/identity"
)

// Identity validates the identity provider's JWT and attaches the caller's
// session to the request context. When required is false, requests without
// a token pass through anonymously (the catalog is public); a token that is
// present but invalid is rejected either way.
func Identity(jwtSecret string, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				if required {
					return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
				}
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			principal, _ := claims["sub"].(string)
			if principal == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}

			sess := identity.Session{
				Identity: domain.Identity{Principal: principal},
				Token:    parts[1],
			}
			ctx := identity.WithSession(c.Request().Context(), sess)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Set("principal", principal)

			return next(c)
		}
	}
}
