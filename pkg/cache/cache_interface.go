package cache

import (
	"context"
	"time"
)

// Cache is the contract for the cache layer.
// Implementations can be swapped (Redis, in-memory) without touching callers.
type Cache interface {
	// Get loads key into dest.
	// found = false on a miss, dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys; missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error
}
