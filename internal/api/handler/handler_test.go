package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/monishsatpuri/blogcms/internal/api/middleware"
	"github.com/monishsatpuri/blogcms/internal/api/view"
	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	r, err := view.New(view.Params{BlogName: "Test Blog", Tagline: "tests", About: "about text"})
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e := echo.New()
	e.Renderer = r
	e.Validator = NewValidator()
	return e
}

func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func adminSession() *domain.AdminSession {
	now := time.Now()
	return &domain.AdminSession{Token: "tok", Username: "admin", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
}

// asAdmin marks the context the way middleware.LoadSession does for a
// logged-in request.
func asAdmin(c echo.Context) echo.Context {
	middleware.SetAdmin(c, adminSession())
	return c
}

// --- stubs ---

type stubReader struct {
	homeFn func(ctx context.Context) ([]domain.Post, error)
	postFn func(ctx context.Context, slug string) (*domain.Post, error)
}

func (s *stubReader) Home(ctx context.Context) ([]domain.Post, error) { return s.homeFn(ctx) }
func (s *stubReader) Post(ctx context.Context, slug string) (*domain.Post, error) {
	return s.postFn(ctx, slug)
}

type stubContent struct {
	dashboardFn func(ctx context.Context) ([]domain.Post, error)
	postFn      func(ctx context.Context, id int64) (*domain.Post, error)
	saveFn      func(ctx context.Context, req domain.EditRequest) (*domain.Post, error)
	deleteFn    func(ctx context.Context, id int64) (bool, error)
}

func (s *stubContent) Dashboard(ctx context.Context) ([]domain.Post, error) {
	return s.dashboardFn(ctx)
}
func (s *stubContent) Post(ctx context.Context, id int64) (*domain.Post, error) {
	return s.postFn(ctx, id)
}
func (s *stubContent) Save(ctx context.Context, req domain.EditRequest) (*domain.Post, error) {
	return s.saveFn(ctx, req)
}
func (s *stubContent) Delete(ctx context.Context, id int64) (bool, error) {
	return s.deleteFn(ctx, id)
}

type stubAuthService struct {
	loginFn   func(ctx context.Context, username, password string) (*domain.AdminSession, error)
	loggedOut []string
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.AdminSession, error) {
	return s.loginFn(ctx, username, password)
}
func (s *stubAuthService) Session(context.Context, string) (*domain.AdminSession, error) {
	return nil, domain.ErrNotFound
}
func (s *stubAuthService) IsAuthenticated(context.Context, string) bool { return false }
func (s *stubAuthService) Logout(_ context.Context, token string) error {
	s.loggedOut = append(s.loggedOut, token)
	return nil
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }
