package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache used by the
// repositories. Implementations may be Redis or in-memory; repository code
// never depends on a concrete client.
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found=false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes all keys matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
