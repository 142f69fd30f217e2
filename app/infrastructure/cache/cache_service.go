package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when a key is absent or its entry has
// expired.
var ErrCacheMiss = errors.New("cache miss")

// CacheService defines the interface for cache operations
type CacheService interface {
	// Set stores a value in cache with an expiration time, replacing any
	// previous entry for the key as a whole
	Set(ctx context.Context, key string, value any, expiration time.Duration) error

	// Get retrieves a fresh value from cache into dest; expired entries
	// behave as absent and yield ErrCacheMiss
	Get(ctx context.Context, key string, dest any) error

	// GetStale retrieves the last known value for a key into dest even if
	// its freshness TTL has lapsed, reporting whether one was found
	GetStale(ctx context.Context, key string, dest any) (bool, error)

	// Delete removes a key from cache, including its stale copy
	Delete(ctx context.Context, key string) error

	// Exists checks if a fresh entry exists for a key, without read side
	// effects
	Exists(ctx context.Context, key string) (bool, error)

	// FlushAll removes all entries
	FlushAll(ctx context.Context) error

	// Sweep prunes stale copies older than the maximum staleness bound
	Sweep(ctx context.Context)

	// Close closes the cache
	Close() error
}
