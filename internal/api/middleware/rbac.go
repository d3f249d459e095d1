package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// RBAC rejects requests whose principal does not hold one of the allowed
// roles. It runs after Auth; a missing principal is forbidden.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, _ := c.Get(PrincipalKey).(domain.Principal)
			if _, ok := allowed[principal.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
