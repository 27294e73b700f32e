package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/trackswiftly/userservice/internal/api/metrics"
	"github.com/trackswiftly/userservice/internal/core/ports"
)

// RealmGuard rejects requests for realms outside the configured scope
// pattern. It must be the first check on every route in the realm group.
func RealmGuard(policy ports.PolicyService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := policy.CheckRealm(c.Param("realm")); err != nil {
				metrics.AuthzDeniedTotal.WithLabelValues("realm").Inc()
				return err
			}
			return next(c)
		}
	}
}
