package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware and
// fast-fails before any service call: a request that reached a protected
// handler without a valid role claim never ran the middleware.
func ctxIdentity(c echo.Context) (role domain.Role, identifier string, err error) {
	roleStr, _ := c.Get("role").(string)
	role = domain.Role(roleStr)
	if !role.Valid() {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	identifier, _ = c.Get("identifier").(string)
	if identifier == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing identity")
	}

	return role, identifier, nil
}
