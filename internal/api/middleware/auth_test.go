package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/domain"
)

const testSecret = "test-secret"

type stubSessionStore struct {
	sessions map[string]*domain.Session
}

func (s *stubSessionStore) Save(_ context.Context, session *domain.Session) error {
	s.sessions[session.ID] = session
	return nil
}

func (s *stubSessionStore) Find(_ context.Context, sessionID string) (*domain.Session, error) {
	if sess, ok := s.sessions[sessionID]; ok {
		return sess, nil
	}
	return nil, domain.ErrSessionRevoked
}

func (s *stubSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func (s *stubSessionStore) DeleteByAccount(_ context.Context, accountID string) (int, error) {
	n := 0
	for id, sess := range s.sessions {
		if sess.AccountID == accountID {
			delete(s.sessions, id)
			n++
		}
	}
	return n, nil
}

func signTestToken(t *testing.T, sessionID string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"jti":   sessionID,
		"sub":   "client-001",
		"email": "client@example.com",
		"role":  "client",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuth_ValidToken(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{
		"sid-1": {ID: "sid-1", AccountID: "client-001", Role: domain.RoleClient},
	}}
	c, _ := newAuthContext("Bearer " + signTestToken(t, "sid-1"))

	called := false
	handler := Auth(testSecret, store)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if got, _ := c.Get("account_id").(string); got != "client-001" {
		t.Fatalf("account_id not injected, got %q", got)
	}
	if got, _ := c.Get("role").(string); got != "client" {
		t.Fatalf("role not injected, got %q", got)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{}}
	c, _ := newAuthContext("")

	handler := Auth(testSecret, store)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_GarbageToken(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{}}
	c, _ := newAuthContext("Bearer not.a.token")

	handler := Auth(testSecret, store)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_RevokedSession(t *testing.T) {
	// Token is perfectly valid but its session is gone from the store,
	// which is exactly what a forced disconnect produces.
	store := &stubSessionStore{sessions: map[string]*domain.Session{}}
	c, _ := newAuthContext("Bearer " + signTestToken(t, "sid-revoked"))

	handler := Auth(testSecret, store)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_WrongSignature(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{
		"sid-1": {ID: "sid-1", AccountID: "client-001"},
	}}

	claims := jwt.MapClaims{"jti": "sid-1", "sub": "client-001", "exp": time.Now().Add(time.Hour).Unix()}
	forged, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	c, _ := newAuthContext("Bearer " + forged)

	handler := Auth(testSecret, store)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
