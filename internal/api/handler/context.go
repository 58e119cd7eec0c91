package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marketgrid/marketplace-api/internal/core/ports"
)

// ctxActor extracts the identity injected by the Auth middleware. Presence of
// both claims proves the middleware ran; handlers never trust payload fields
// for identity.
func ctxActor(c echo.Context) (ports.Actor, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" || role == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Actor{UserID: userID, Role: role}, nil
}
