package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

type stubAuth struct {
	sessions map[string]*domain.AdminSession
	err      error
}

func (s *stubAuth) Login(context.Context, string, string) (*domain.AdminSession, error) {
	return nil, domain.ErrAuthenticationFailure
}

func (s *stubAuth) Session(_ context.Context, token string) (*domain.AdminSession, error) {
	if s.err != nil {
		return nil, s.err
	}
	if sess, ok := s.sessions[token]; ok {
		return sess, nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubAuth) IsAuthenticated(ctx context.Context, token string) bool {
	_, err := s.Session(ctx, token)
	return err == nil
}

func (s *stubAuth) Logout(context.Context, string) error { return nil }

func newSession(token string) *domain.AdminSession {
	now := time.Now()
	return &domain.AdminSession{Token: token, Username: "admin", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
}

// issueCookie runs Issue against a throwaway recorder and returns the cookie.
func issueCookie(t *testing.T, cookies *SessionCookie, session *domain.AdminSession) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if err := cookies.Issue(c, session); err != nil {
		t.Fatalf("issue: %v", err)
	}
	res := rec.Result()
	defer res.Body.Close()
	for _, ck := range res.Cookies() {
		if ck.Name == CookieName {
			return ck
		}
	}
	t.Fatalf("no %s cookie set", CookieName)
	return nil
}

func runLoadSession(t *testing.T, cookies *SessionCookie, auth *stubAuth, cookie *http.Cookie) (*domain.AdminSession, bool, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	var (
		got *domain.AdminSession
		ok  bool
	)
	h := LoadSession(cookies, auth)(func(c echo.Context) error {
		got, ok = CurrentAdmin(c)
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return got, ok, rec
}

func TestLoadSession_ValidCookie(t *testing.T) {
	cookies := NewSessionCookie("secret", false)
	session := newSession("tok-1")
	auth := &stubAuth{sessions: map[string]*domain.AdminSession{"tok-1": session}}

	got, ok, _ := runLoadSession(t, cookies, auth, issueCookie(t, cookies, session))
	if !ok {
		t.Fatalf("expected admin session on context")
	}
	if got.Token != "tok-1" {
		t.Fatalf("unexpected token %q", got.Token)
	}
}

func TestLoadSession_NoCookie(t *testing.T) {
	_, ok, _ := runLoadSession(t, NewSessionCookie("secret", false), &stubAuth{}, nil)
	if ok {
		t.Fatalf("expected anonymous request")
	}
}

func TestLoadSession_WrongSecret(t *testing.T) {
	session := newSession("tok-1")
	auth := &stubAuth{sessions: map[string]*domain.AdminSession{"tok-1": session}}
	forged := issueCookie(t, NewSessionCookie("other", false), session)

	_, ok, _ := runLoadSession(t, NewSessionCookie("secret", false), auth, forged)
	if ok {
		t.Fatalf("cookie signed with another key must not authenticate")
	}
}

func TestLoadSession_UnsignedToken(t *testing.T) {
	session := newSession("tok-1")
	auth := &stubAuth{sessions: map[string]*domain.AdminSession{"tok-1": session}}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		ID:        "tok-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, ok, _ := runLoadSession(t, NewSessionCookie("secret", false), auth, &http.Cookie{Name: CookieName, Value: unsigned})
	if ok {
		t.Fatalf("alg=none token must not authenticate")
	}
}

func TestLoadSession_RevokedSessionClearsCookie(t *testing.T) {
	cookies := NewSessionCookie("secret", false)
	cookie := issueCookie(t, cookies, newSession("gone"))

	_, ok, rec := runLoadSession(t, cookies, &stubAuth{}, cookie)
	if ok {
		t.Fatalf("expected anonymous request")
	}
	if got := rec.Header().Get(echo.HeaderSetCookie); got == "" {
		t.Fatalf("expected cookie to be cleared")
	}
}

func TestLoadSession_StoreFailureIsAnonymous(t *testing.T) {
	cookies := NewSessionCookie("secret", false)
	cookie := issueCookie(t, cookies, newSession("tok-1"))

	_, ok, rec := runLoadSession(t, cookies, &stubAuth{err: domain.ErrStorageUnavailable}, cookie)
	if ok {
		t.Fatalf("expected anonymous request")
	}
	if got := rec.Header().Get(echo.HeaderSetCookie); got != "" {
		t.Fatalf("cookie must survive a store outage, got Set-Cookie %q", got)
	}
}

func TestSessionCookie_Expired(t *testing.T) {
	cookies := NewSessionCookie("secret", false)
	session := newSession("tok-1")
	cookie := issueCookie(t, cookies, session)

	cookies.now = func() time.Time { return session.ExpiresAt.Add(time.Minute) }
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Request().AddCookie(cookie)

	if tok := cookies.Token(c); tok != "" {
		t.Fatalf("expired cookie returned token %q", tok)
	}
}

func TestRequireAdmin(t *testing.T) {
	e := echo.New()
	h := RequireAdmin()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	t.Run("anonymous redirects", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/edit/1", nil), rec)
		if err := h(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusSeeOther || rec.Header().Get(echo.HeaderLocation) != LoginPath {
			t.Fatalf("expected 303 to %s, got %d %q", LoginPath, rec.Code, rec.Header().Get(echo.HeaderLocation))
		}
	})

	t.Run("admin passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/edit/1", nil), rec)
		c.Set(adminKey, newSession("tok"))
		if err := h(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
