// Package redis defines the cache service interface and its Redis
// implementation. The service layer depends on these interfaces, never
// on the client directly.
package redis

import (
	"context"
	"time"
)

// CacheService abstracts the cache operations used by the services.
type CacheService interface {
	// Set stores a value under key with a TTL.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Get returns the value for key, or "" with a nil error on a miss.
	Get(ctx context.Context, key string) (string, error)
	// Delete removes a key if it exists.
	Delete(ctx context.Context, key string) error
	// DeleteByPattern removes every key matching the glob pattern.
	DeleteByPattern(ctx context.Context, pattern string) error
	// DeleteByPatterns removes the keys of several patterns.
	DeleteByPatterns(ctx context.Context, patterns []string) error
}

// AsyncCacheService adds non-blocking task submission for cache
// maintenance that must not sit on the request path.
type AsyncCacheService interface {
	CacheService
	// SubmitTask queues action for a background worker. When the queue
	// is full the action runs synchronously instead of being dropped.
	SubmitTask(action func())
}
