package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trackswiftly/userservice/internal/api/metrics"
	"github.com/trackswiftly/userservice/internal/core/domain"
	"github.com/trackswiftly/userservice/internal/core/ports"
)

// RequireRoles enforces role-based access. It must run after Auth; role
// membership is re-evaluated on every request, never cached.
func RequireRoles(policy ports.PolicyService, roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := c.Get("principal").(*domain.Principal)
			if !ok {
				metrics.AuthzDeniedTotal.WithLabelValues("role").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			if err := policy.RequireAnyRole(c.Request().Context(), c.Param("realm"), principal, roles); err != nil {
				if err == domain.ErrForbidden {
					metrics.AuthzDeniedTotal.WithLabelValues("role").Inc()
				}
				return err
			}
			return next(c)
		}
	}
}
