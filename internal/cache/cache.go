package cache

import (
	"context"
	"time"
)

// Store is a key-value store with per-entry expiry. Implementations must be
// safe for concurrent use.
type Store interface {
	// Get returns the value for key, or false on a miss or a read failure.
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
