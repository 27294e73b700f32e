package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trackswiftly/userservice/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware and
// fast-fails before any service call: its presence proves the middleware ran
// and the store lookup succeeded.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	principal, ok := c.Get("principal").(*domain.Principal)
	if !ok || principal == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return principal, nil
}
