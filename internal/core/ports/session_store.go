package ports

import (
	"context"
	"time"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

// SessionStore holds ephemeral admin sessions keyed by token.
type SessionStore interface {
	// Save stores the session; it disappears after ttl.
	Save(ctx context.Context, session domain.AdminSession, ttl time.Duration) error
	// Get returns domain.ErrNotFound for unknown or expired tokens.
	Get(ctx context.Context, token string) (*domain.AdminSession, error)
	// Delete is idempotent.
	Delete(ctx context.Context, token string) error
}

// CredentialVerifier decides whether a username/password pair is the admin
// credential.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// Pinger is implemented by backends that can report their own reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
