package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
)

// TokenVerifier validates a bearer token and extracts the caller identity.
// Implementations cover locally-issued HS256 tokens and JWKS-backed RS256
// tokens from an external issuer.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Identity, error)
}

// Auth validates the bearer token and injects the caller identity into the
// request context as user_id and email.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := verifier.Verify(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("user_id", identity.UserID)
			c.Set("email", identity.Email)

			return next(c)
		}
	}
}
