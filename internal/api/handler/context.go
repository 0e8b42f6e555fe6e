package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobtrail/jobtrail-api/internal/core/ports"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a request that
// reaches a protected handler without claims means the middleware did
// not run, which is a wiring bug surfaced as 401 rather than a panic.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get("email").(string)
	return ports.Identity{UserID: userID, Email: email}, nil
}
