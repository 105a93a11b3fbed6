package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inventoryhub/inventory-api/internal/core/domain"
	"github.com/inventoryhub/inventory-api/internal/core/ports"
)

// AuthService verifies credentials against the credential store. It owns
// none of the session state; callers create sessions from the identity it
// returns.
type AuthService struct {
	users    ports.UserRepository
	resolver ports.ProfileResolver
	recorder ports.LoginRecorder
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, resolver ports.ProfileResolver, recorder ports.LoginRecorder, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, resolver: resolver, recorder: recorder, log: log}
}

// Authenticate looks the user up by exact email, verifies the password
// hash, and resolves the display name. A lookup miss and a wrong password
// return the same domain.ErrInvalidCredentials value so callers cannot
// enumerate accounts. The active check runs only after the hash verifies,
// since deactivation is not secret-dependent.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.SessionIdentity, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domain.ErrAccountDeactivated
	}

	displayName, err := s.resolver.Resolve(ctx, user.Role, user.ReferenceID)
	if err != nil {
		// Orphaned credential or profile-store failure: a server fault,
		// surfaced distinctly so the boundary can log it as such.
		return nil, fmt.Errorf("authenticate: resolve display name: %w", err)
	}

	// Best-effort, off the request path. Exactly one enqueue per login.
	s.recorder.RecordLogin(user.ID, time.Now().UTC())

	s.log.Info().
		Str("user_id", user.ID).
		Str("role", string(user.Role)).
		Msg("login succeeded")

	return &domain.SessionIdentity{
		UserID:      user.ID,
		Email:       user.Email,
		Role:        user.Role,
		ReferenceID: user.ReferenceID,
		DisplayName: displayName,
	}, nil
}
