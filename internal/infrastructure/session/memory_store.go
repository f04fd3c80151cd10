// Package session provides an in-process admin session store for
// single-instance deployments and tests.
package session

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

const cleanupInterval = 10 * time.Minute

// MemoryStore keeps sessions in a TTL cache. Sessions do not survive a
// restart and are not shared between instances.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: cache.New(cache.NoExpiration, cleanupInterval)}
}

func (s *MemoryStore) Save(_ context.Context, session domain.AdminSession, ttl time.Duration) error {
	s.cache.Set(session.Token, session, ttl)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*domain.AdminSession, error) {
	v, ok := s.cache.Get(token)
	if !ok {
		return nil, domain.ErrNotFound
	}
	session := v.(domain.AdminSession)
	return &session, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.cache.Delete(token)
	return nil
}

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// Len returns the number of live sessions.
func (s *MemoryStore) Len() int {
	return s.cache.ItemCount()
}
