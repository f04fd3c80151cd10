package ports

import (
	"context"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

// AuthService is the session authenticator.
type AuthService interface {
	// Login returns a new session for valid credentials and
	// domain.ErrAuthenticationFailure otherwise.
	Login(ctx context.Context, username, password string) (*domain.AdminSession, error)
	// Session resolves a token; domain.ErrNotFound when not logged in.
	Session(ctx context.Context, token string) (*domain.AdminSession, error)
	IsAuthenticated(ctx context.Context, token string) bool
	Logout(ctx context.Context, token string) error
}
