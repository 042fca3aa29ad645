package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call when it is absent: a guarded route
// reached without a subject means the middleware did not run.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	email, _ := c.Get("email").(string)
	return domain.Identity{UserID: userID, Email: email}, nil
}
