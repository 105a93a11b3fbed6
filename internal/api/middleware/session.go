package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/inventoryhub/inventory-api/internal/core/ports"
)

// Context keys set by the session middleware.
const (
	ContextIdentity     = "identity"
	ContextSessionToken = "session_token"
)

// Session resolves the session cookie to an identity and injects it into
// the request context. Requests without a valid session pass through
// anonymous; RequireRole decides what anonymous callers may reach. The
// token is stored alongside the identity so logout can destroy the exact
// session it came in with.
func Session(store ports.SessionStore, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			identity, err := store.Read(c.Request().Context(), cookie.Value)
			if err != nil {
				// Expired, destroyed, or garbage token: treat as anonymous.
				return next(c)
			}

			c.Set(ContextIdentity, identity)
			c.Set(ContextSessionToken, cookie.Value)
			return next(c)
		}
	}
}
