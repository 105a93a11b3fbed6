package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inventoryhub/inventory-api/internal/core/domain"
)

type stubSessionStore struct {
	sessions map[string]domain.SessionIdentity
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.SessionIdentity)}
}

func (s *stubSessionStore) Create(_ context.Context, identity domain.SessionIdentity) (string, error) {
	token := "tok_" + identity.UserID
	s.sessions[token] = identity
	return token, nil
}

func (s *stubSessionStore) Read(_ context.Context, token string) (*domain.SessionIdentity, error) {
	identity, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &identity, nil
}

func (s *stubSessionStore) Destroy(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

const testCookie = "inventory_session"

func TestSession_ValidCookie(t *testing.T) {
	e := echo.New()
	store := newStubSessionStore()
	token, _ := store.Create(context.Background(), domain.SessionIdentity{
		UserID: "u1", Email: "ada@example.com", Role: domain.RoleCustomer, ReferenceID: "c1", DisplayName: "Ada Okafor",
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Session(store, testCookie)(func(c echo.Context) error {
		called = true
		identity, ok := c.Get(ContextIdentity).(*domain.SessionIdentity)
		if !ok || identity.UserID != "u1" {
			t.Fatalf("identity not injected: %+v", c.Get(ContextIdentity))
		}
		if c.Get(ContextSessionToken) != token {
			t.Fatalf("session token not injected")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestSession_NoCookiePassesThroughAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(newStubSessionStore(), testCookie)(func(c echo.Context) error {
		if c.Get(ContextIdentity) != nil {
			t.Fatalf("anonymous request must carry no identity")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestSession_UnknownTokenPassesThroughAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "forged"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(newStubSessionStore(), testCookie)(func(c echo.Context) error {
		if c.Get(ContextIdentity) != nil {
			t.Fatalf("forged token must not yield an identity")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
