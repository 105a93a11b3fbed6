package ports

import (
	"context"
	"time"

	"github.com/inventoryhub/inventory-api/internal/core/domain"
)

// SessionStore owns session lifecycle: Anonymous -> Authenticated (Create)
// -> Anonymous (Destroy or TTL expiry). Tokens are opaque to callers and
// independent per client; the store must keep concurrent sessions
// isolated from one another.
type SessionStore interface {
	// Create stores the identity under a fresh random token and returns
	// the token. It never reuses a caller-supplied token.
	Create(ctx context.Context, identity domain.SessionIdentity) (token string, err error)

	// Read resolves a token to its identity, or domain.ErrSessionNotFound.
	Read(ctx context.Context, token string) (*domain.SessionIdentity, error)

	// Destroy erases the session record entirely. Destroying an unknown
	// token is not an error.
	Destroy(ctx context.Context, token string) error
}

// LoginRecorder accepts best-effort last-login updates off the request
// path. Implementations must never block the caller.
type LoginRecorder interface {
	RecordLogin(userID string, at time.Time)
}
