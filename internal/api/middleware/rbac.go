package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inventoryhub/inventory-api/internal/core/domain"
)

// RequireRole guards role-scoped routes. A request without an
// authenticated identity, or with any role other than the required one,
// is redirected to the login page — no partial page, no explanation that
// could confirm what lives behind the route. The check runs before the
// handler, so no role-scoped data is fetched for a denied request.
func RequireRole(role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(ContextIdentity).(*domain.SessionIdentity)
			if !ok || identity == nil || identity.Role != role {
				return c.Redirect(http.StatusFound, domain.LoginPath)
			}
			return next(c)
		}
	}
}
