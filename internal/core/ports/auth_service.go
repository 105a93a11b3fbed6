package ports

import (
	"context"

	"github.com/inventoryhub/inventory-api/internal/core/domain"
)

// AuthService authenticates credentials and yields the identity that a
// session will carry. It never issues tokens itself; session lifecycle
// belongs to the SessionStore.
type AuthService interface {
	// Authenticate verifies email/password against the credential store.
	// Unknown email and wrong password both return
	// domain.ErrInvalidCredentials; a correct password on an inactive
	// account returns domain.ErrAccountDeactivated.
	Authenticate(ctx context.Context, email, password string) (*domain.SessionIdentity, error)
}

// ProfileResolver maps a (role, reference id) pair to a display name.
type ProfileResolver interface {
	// Resolve returns the display name for the given role-scoped profile.
	// A non-admin role with no matching profile row returns
	// domain.ErrProfileNotFound.
	Resolve(ctx context.Context, role domain.Role, referenceID string) (string, error)
}
