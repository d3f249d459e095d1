package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// CoordsKey is the context key under which LocationEnrichment stores the
// resolved GeoJSON point.
const CoordsKey = "coords"

// LocationEnrichment attaches the pre-resolved [longitude, latitude] pair to
// the request context before cat creation. The pair arrives as a "lng,lat"
// form field from the upstream geocoding step; creation cannot proceed
// without it.
func LocationEnrichment() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.FormValue("location")
			if raw == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "location is required")
			}

			parts := strings.Split(raw, ",")
			if len(parts) != 2 {
				return echo.NewHTTPError(http.StatusBadRequest, "location must be \"lng,lat\"")
			}
			lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "location longitude is not a number")
			}
			lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "location latitude is not a number")
			}

			c.Set(CoordsKey, domain.NewPoint(lng, lat))
			return next(c)
		}
	}
}
