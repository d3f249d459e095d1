package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/whiskerworks/cat-registry/internal/api/middleware"
	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware. Its
// presence proves the middleware ran; a missing principal on a protected
// route is a wiring error surfaced as 401, not 500.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, _ := c.Get(middleware.PrincipalKey).(domain.Principal)
	if !principal.Authenticated() {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return principal, nil
}

// ctxCoords extracts the pre-resolved location attached by the enrichment
// middleware; required for cat creation.
func ctxCoords(c echo.Context) (domain.Point, error) {
	point, ok := c.Get(middleware.CoordsKey).(domain.Point)
	if !ok {
		return domain.Point{}, echo.NewHTTPError(http.StatusBadRequest, "location is required")
	}
	return point, nil
}
