package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps admin sessions in Redis.
// Key format: session:<token>, value: JSON-encoded AdminSession, TTL = session lifetime.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Save writes the session with the given time-to-live.
func (s *SessionStore) Save(ctx context.Context, session domain.AdminSession, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(session.Token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w: %w", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// Get loads a session; expired and unknown tokens yield domain.ErrNotFound.
func (s *SessionStore) Get(ctx context.Context, token string) (*domain.AdminSession, error) {
	payload, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w: %w", domain.ErrStorageUnavailable, err)
	}

	var session domain.AdminSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

// Delete removes the session. Deleting an unknown token is not an error.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("delete session: %w: %w", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// Ping reports Redis reachability for readiness checks.
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *SessionStore) key(token string) string {
	return sessionKeyPrefix + token
}
