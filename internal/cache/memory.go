package cache

import (
	"context"
	gocache "github.com/patrickmn/go-cache"
	"time"
)

// MemoryStore keeps entries in process. It stands in for redis when
// disable_redis is set.
type MemoryStore struct {
	c *gocache.Cache
}

func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{
		c: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	v, found := s.c.Get(key)
	if !found {
		return nil, false
	}
	value, ok := v.([]byte)
	return value, ok
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	// copy so later writes by the caller don't leak into the cache
	stored := make([]byte, len(value))
	copy(stored, value)
	s.c.Set(key, stored, ttl)
}
