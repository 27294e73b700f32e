package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/trackswiftly/userservice/internal/core/domain"
)

func signToken(t *testing.T, secret, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newAuthContext(e *echo.Echo, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("realm")
	c.SetParamValues("trackswiftly")
	return c, rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	store := newStubStore()
	store.users["u1"] = &domain.Principal{ID: "u1", Username: "alice", Enabled: true}

	c, rec := newAuthContext(e, "Bearer "+signToken(t, "secret", "u1"))

	called := false
	handler := Auth("secret", store)(func(c echo.Context) error {
		called = true
		principal, ok := c.Get("principal").(*domain.Principal)
		if !ok || principal.Username != "alice" {
			t.Fatalf("principal not resolved: %v", c.Get("principal"))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	e := echo.New()
	store := newStubStore()
	store.users["u1"] = &domain.Principal{ID: "u1", Username: "alice", Enabled: true}
	store.users["u2"] = &domain.Principal{ID: "u2", Username: "bob", Enabled: false}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token abc"},
		{"garbage token", "Bearer not-a-token"},
		{"wrong secret", "Bearer " + signToken(t, "other", "u1")},
		{"missing subject", "Bearer " + signToken(t, "secret", "")},
		{"unknown principal", "Bearer " + signToken(t, "secret", "ghost")},
		{"disabled principal", "Bearer " + signToken(t, "secret", "u2")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newAuthContext(e, tc.header)
			handler := Auth("secret", store)(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
