package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/trackswiftly/userservice/internal/api/metrics"
	"github.com/trackswiftly/userservice/internal/core/ports"
)

// Auth verifies the bearer credential and resolves the full principal from
// the identity store, injecting it into the request context as "principal".
// The handle is valid for this request only; nothing is cached across
// requests.
func Auth(jwtSecret string, store ports.IdentityStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthenticated("missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthenticated("invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return unauthenticated("invalid token")
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				return unauthenticated("token missing subject")
			}

			principal, err := store.UserByID(c.Request().Context(), c.Param("realm"), sub)
			if err != nil {
				return unauthenticated("unknown principal")
			}
			if !principal.Enabled {
				return unauthenticated("account disabled")
			}

			c.Set("principal", principal)
			return next(c)
		}
	}
}

func unauthenticated(reason string) error {
	metrics.AuthzDeniedTotal.WithLabelValues("authentication").Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, reason)
}
