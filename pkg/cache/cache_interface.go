package cache

import (
	"context"
	"time"
)

// Cache is the contract for the caching layer. The Redis implementation
// lives in internal/infrastructure/cache; a no-op fallback keeps the API
// usable when Redis is unreachable.
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found=false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping checks the connection.
	Ping(ctx context.Context) error
}
