package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gigworks/identity-api/internal/core/ports"
)

// TokenVerifier is the slice of the token issuer the middleware needs.
type TokenVerifier interface {
	Verify(token string) (ports.TokenClaims, error)
}

// cookieName is the auth cookie set for browser clients; API clients use the
// Authorization header.
const cookieName = "token"

// Auth extracts the bearer token, verifies it and injects the authenticated
// identity into the request context. Expired and tampered tokens are
// rejected identically.
func Auth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing credentials")
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("subject_id", claims.Subject)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

// bearerToken pulls the credential from the Authorization header, falling
// back to the auth cookie.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}

	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie.Value
	}
	return ""
}
