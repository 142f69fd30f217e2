package cache

import (
	"context"
	"fmt"
	"time"
)

// NoOpCacheService provides a no-operation cache service for graceful degradation
type NoOpCacheService struct{}

// NewNoOpCacheService creates a cache service that never stores anything
func NewNoOpCacheService() CacheService {
	return &NoOpCacheService{}
}

// Set is a no-op implementation
func (n *NoOpCacheService) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return nil
}

// Get always reports a miss
func (n *NoOpCacheService) Get(ctx context.Context, key string, dest any) error {
	return fmt.Errorf("%w: %s", ErrCacheMiss, key)
}

// GetStale never finds a stale copy
func (n *NoOpCacheService) GetStale(ctx context.Context, key string, dest any) (bool, error) {
	return false, nil
}

// Delete is a no-op implementation
func (n *NoOpCacheService) Delete(ctx context.Context, key string) error {
	return nil
}

// Exists always returns false
func (n *NoOpCacheService) Exists(ctx context.Context, key string) (bool, error) {
	return false, nil
}

// FlushAll is a no-op implementation
func (n *NoOpCacheService) FlushAll(ctx context.Context) error {
	return nil
}

// Sweep is a no-op implementation
func (n *NoOpCacheService) Sweep(ctx context.Context) {
}

// Close is a no-op implementation
func (n *NoOpCacheService) Close() error {
	return nil
}
