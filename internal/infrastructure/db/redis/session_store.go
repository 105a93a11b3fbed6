package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inventoryhub/inventory-api/internal/core/domain"
)

const sessionKeyPrefix = "session:"

// tokenBytes of entropy per session token; hex-encoded on the wire.
const tokenBytes = 32

// SessionStore keeps authenticated identities in Redis under opaque
// random tokens with a TTL. Each session is its own key, so concurrent
// clients can never read each other's state, and expiry needs no
// in-process garbage collection.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
// A non-positive ttl defaults to 24 hours.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Create stores the identity under a fresh random token. The token is
// never derived from caller input, so an anonymous pre-login token can
// never silently become privileged.
func (s *SessionStore) Create(ctx context.Context, identity domain.SessionIdentity) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}

	payload, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("session create: marshal identity: %w", err)
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}
	return token, nil
}

// Read resolves a token to its stored identity.
func (s *SessionStore) Read(ctx context.Context, token string) (*domain.SessionIdentity, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("session read: %w", err)
	}

	var identity domain.SessionIdentity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return nil, fmt.Errorf("session read: unmarshal identity: %w", err)
	}
	return &identity, nil
}

// Destroy deletes the session record. The whole value goes with the key;
// nothing is left to mark inactive. Unknown tokens are a no-op.
func (s *SessionStore) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("session destroy: %w", err)
	}
	return nil
}

func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
