package domain

import "time"

// AdminSession binds an authenticated username to an opaque session token.
// Sessions live in a session store only, never in the post database.
type AdminSession struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at now.
func (s AdminSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
