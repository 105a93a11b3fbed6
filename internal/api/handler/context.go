package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inventoryhub/inventory-api/internal/api/middleware"
	"github.com/inventoryhub/inventory-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the session middleware
// and performs a fast-fail check before any service call:
//   - the identity must be present (presence proves the guard ran);
//   - non-admin roles require a reference id, without which the session
//     is structurally valid but operationally unusable.
func ctxIdentity(c echo.Context) (*domain.SessionIdentity, error) {
	identity, _ := c.Get(middleware.ContextIdentity).(*domain.SessionIdentity)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	if identity.Role != domain.RoleAdmin && identity.ReferenceID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "session missing profile reference")
	}
	return identity, nil
}
