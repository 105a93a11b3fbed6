package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inventoryhub/inventory-api/internal/core/domain"
)

type stubUserRepo struct {
	byEmail    map[string]*domain.User
	lastLogins map[string]time.Time
	recent     []domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail:    make(map[string]*domain.User),
		lastLogins: make(map[string]time.Time),
	}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) UpdateLastLogin(_ context.Context, userID string, at time.Time) error {
	r.lastLogins[userID] = at
	return nil
}

func (r *stubUserRepo) Recent(_ context.Context, _ int64) ([]domain.User, error) {
	return r.recent, nil
}

type stubProfileRepo struct {
	customers map[string]*domain.CustomerProfile
	suppliers map[string]*domain.SupplierProfile
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{
		customers: make(map[string]*domain.CustomerProfile),
		suppliers: make(map[string]*domain.SupplierProfile),
	}
}

func (r *stubProfileRepo) FindCustomer(_ context.Context, id string) (*domain.CustomerProfile, error) {
	p, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (r *stubProfileRepo) FindSupplier(_ context.Context, id string) (*domain.SupplierProfile, error) {
	p, ok := r.suppliers[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

type recordedLogin struct {
	userID string
	at     time.Time
}

type stubRecorder struct {
	calls []recordedLogin
}

func (r *stubRecorder) RecordLogin(userID string, at time.Time) {
	r.calls = append(r.calls, recordedLogin{userID: userID, at: at})
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func seedCustomer(t *testing.T, users *stubUserRepo, profiles *stubProfileRepo, email, password string, active bool) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           "u_" + email,
		Email:        email,
		PasswordHash: mustHash(t, password),
		Role:         domain.RoleCustomer,
		ReferenceID:  "c_" + email,
		IsActive:     active,
		CreatedAt:    time.Now().UTC(),
	}
	users.byEmail[email] = u
	profiles.customers[u.ReferenceID] = &domain.CustomerProfile{
		ID:        u.ReferenceID,
		FirstName: "Ada",
		LastName:  "Okafor",
		Email:     email,
	}
	return u
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	recorder := &stubRecorder{}
	seedCustomer(t, users, profiles, "ada@example.com", "s3cret-pass", true)

	svc := NewAuthService(users, NewProfileResolver(profiles), recorder, zerolog.Nop())

	identity, err := svc.Authenticate(context.Background(), "ada@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if identity.Role != domain.RoleCustomer {
		t.Fatalf("unexpected role: %s", identity.Role)
	}
	if identity.DisplayName != "Ada Okafor" {
		t.Fatalf("unexpected display name: %q", identity.DisplayName)
	}
	if identity.ReferenceID != "c_ada@example.com" {
		t.Fatalf("unexpected reference id: %q", identity.ReferenceID)
	}
	if len(recorder.calls) != 1 {
		t.Fatalf("expected exactly one last-login enqueue, got %d", len(recorder.calls))
	}
	if recorder.calls[0].userID != "u_ada@example.com" {
		t.Fatalf("last-login recorded for wrong user: %s", recorder.calls[0].userID)
	}
}

func TestAuthService_Authenticate_NonEnumeration(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	recorder := &stubRecorder{}
	seedCustomer(t, users, profiles, "known@example.com", "rightpass", true)

	svc := NewAuthService(users, NewProfileResolver(profiles), recorder, zerolog.Nop())

	_, unknownErr := svc.Authenticate(context.Background(), "ghost@example.com", "whatever")
	_, wrongPwErr := svc.Authenticate(context.Background(), "known@example.com", "wrongpass")

	if unknownErr != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if wrongPwErr != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPwErr)
	}
	// Content-identical: same error value, same message.
	if unknownErr.Error() != wrongPwErr.Error() {
		t.Fatalf("error messages differ: %q vs %q", unknownErr, wrongPwErr)
	}
	if len(recorder.calls) != 0 {
		t.Fatalf("failed logins must not record last-login")
	}
}

func TestAuthService_Authenticate_EmptyInput(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), NewProfileResolver(newStubProfileRepo()), &stubRecorder{}, zerolog.Nop())

	if _, err := svc.Authenticate(context.Background(), "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("empty email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "a@b.com", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("empty password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_Deactivated(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	seedCustomer(t, users, profiles, "off@example.com", "s3cret-pass", false)

	svc := NewAuthService(users, NewProfileResolver(profiles), &stubRecorder{}, zerolog.Nop())

	_, err := svc.Authenticate(context.Background(), "off@example.com", "s3cret-pass")
	if err != domain.ErrAccountDeactivated {
		t.Fatalf("expected ErrAccountDeactivated, got %v", err)
	}

	// Wrong password on a deactivated account must still look like any
	// other credential failure, not reveal the deactivation.
	_, err = svc.Authenticate(context.Background(), "off@example.com", "wrongpass")
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_OrphanedCredential(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	recorder := &stubRecorder{}
	u := seedCustomer(t, users, profiles, "orphan@example.com", "s3cret-pass", true)
	delete(profiles.customers, u.ReferenceID)

	svc := NewAuthService(users, NewProfileResolver(profiles), recorder, zerolog.Nop())

	_, err := svc.Authenticate(context.Background(), "orphan@example.com", "s3cret-pass")
	if err == nil {
		t.Fatalf("expected error for orphaned credential")
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound in chain, got %v", err)
	}
}

func TestAuthService_Authenticate_AdminNeedsNoProfile(t *testing.T) {
	users := newStubUserRepo()
	users.byEmail["root@example.com"] = &domain.User{
		ID:           "u_admin",
		Email:        "root@example.com",
		PasswordHash: mustHash(t, "adminpass"),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}

	svc := NewAuthService(users, NewProfileResolver(newStubProfileRepo()), &stubRecorder{}, zerolog.Nop())

	identity, err := svc.Authenticate(context.Background(), "root@example.com", "adminpass")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if identity.DisplayName != domain.AdminDisplayName {
		t.Fatalf("unexpected admin display name: %q", identity.DisplayName)
	}
}
