package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
	"github.com/monishsatpuri/blogcms/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// AuthService implements login, logout and session lookup for the single
// admin account.
type AuthService struct {
	verifier ports.CredentialVerifier
	sessions ports.SessionStore
	ttl      time.Duration
	log      zerolog.Logger
	now      func() time.Time
}

func NewAuthService(verifier ports.CredentialVerifier, sessions ports.SessionStore, ttl time.Duration, log zerolog.Logger) *AuthService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		verifier: verifier,
		sessions: sessions,
		ttl:      ttl,
		log:      log,
		now:      time.Now,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.AdminSession, error) {
	if username == "" || password == "" || !s.verifier.Verify(username, password) {
		s.log.Info().Str("username", username).Msg("admin login rejected")
		return nil, domain.ErrAuthenticationFailure
	}

	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	now := s.now().UTC()
	session := domain.AdminSession{
		Token:     token,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Save(ctx, session, s.ttl); err != nil {
		return nil, fmt.Errorf("login: save session: %w", err)
	}

	s.log.Info().Str("username", username).Msg("admin logged in")
	return &session, nil
}

func (s *AuthService) Session(ctx context.Context, token string) (*domain.AdminSession, error) {
	if token == "" {
		return nil, domain.ErrNotFound
	}
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.Expired(s.now()) {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

// IsAuthenticated treats a session store failure as "not authenticated" for
// this request only; the stored session is left untouched.
func (s *AuthService) IsAuthenticated(ctx context.Context, token string) bool {
	_, err := s.Session(ctx, token)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.log.Warn().Err(err).Msg("session lookup failed")
	}
	return err == nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
