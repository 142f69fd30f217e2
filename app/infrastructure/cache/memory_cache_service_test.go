package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	service := NewMemoryCacheService()

	stored := []string{"2_game", "10_game", "apple"}
	require.NoError(t, service.Set(ctx, "v1:pgn:level:beginner", stored, FreshTTL))

	var got []string
	require.NoError(t, service.Get(ctx, "v1:pgn:level:beginner", &got))
	assert.Equal(t, stored, got)
}

func TestMemoryCacheMiss(t *testing.T) {
	ctx := context.Background()
	service := NewMemoryCacheService()

	var got []string
	err := service.Get(ctx, "v1:pgn:level:absent", &got)
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheSetReplacesEntryAsAWhole(t *testing.T) {
	ctx := context.Background()
	service := NewMemoryCacheService()

	require.NoError(t, service.Set(ctx, "key", []string{"old"}, FreshTTL))
	require.NoError(t, service.Set(ctx, "key", []string{"new", "values"}, FreshTTL))

	var got []string
	require.NoError(t, service.Get(ctx, "key", &got))
	assert.Equal(t, []string{"new", "values"}, got)
}

func TestMemoryCacheExpiredEntryIsAbsentButStaleReadable(t *testing.T) {
	ctx := context.Background()
	service := NewMemoryCacheService()

	stored := []string{"2_game"}
	require.NoError(t, service.Set(ctx, "key", stored, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	var fresh []string
	require.ErrorIs(t, service.Get(ctx, "key", &fresh), ErrCacheMiss)

	exists, err := service.Exists(ctx, "key")
	require.NoError(t, err)
	assert.False(t, exists)

	var stale []string
	found, err := service.GetStale(ctx, "key", &stale)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, stored, stale)
}

func TestMemoryCacheDeleteRemovesStaleCopy(t *testing.T) {
	ctx := context.Background()
	service := NewMemoryCacheService()

	require.NoError(t, service.Set(ctx, "key", []string{"a"}, FreshTTL))
	require.NoError(t, service.Delete(ctx, "key"))

	var got []string
	require.ErrorIs(t, service.Get(ctx, "key", &got), ErrCacheMiss)

	found, err := service.GetStale(ctx, "key", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCacheFlushAll(t *testing.T) {
	ctx := context.Background()
	service := NewMemoryCacheService()

	require.NoError(t, service.Set(ctx, "one", []string{"a"}, FreshTTL))
	require.NoError(t, service.Set(ctx, "two", []string{"b"}, FreshTTL))
	require.NoError(t, service.FlushAll(ctx))

	for _, key := range []string{"one", "two"} {
		var got []string
		require.ErrorIs(t, service.Get(ctx, key, &got), ErrCacheMiss)
		found, err := service.GetStale(ctx, key, &got)
		require.NoError(t, err)
		assert.False(t, found)
	}
}

func TestMemoryCacheExists(t *testing.T) {
	ctx := context.Background()
	service := NewMemoryCacheService()

	exists, err := service.Exists(ctx, "key")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, service.Set(ctx, "key", []string{"a"}, FreshTTL))
	exists, err = service.Exists(ctx, "key")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryCacheSweepPrunesOldStaleCopies(t *testing.T) {
	ctx := context.Background()
	service := NewMemoryCacheService().(*MemoryCacheService)

	require.NoError(t, service.Set(ctx, "key", []string{"a"}, FreshTTL))

	service.mu.Lock()
	entry := service.stale["key"]
	entry.storedAt = time.Now().Add(-(MaxStaleness + time.Hour))
	service.stale["key"] = entry
	service.mu.Unlock()

	service.Sweep(ctx)

	var got []string
	found, err := service.GetStale(ctx, "key", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	service := NewMemoryCacheService()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_ = service.Set(ctx, "key", []string{"a", "b"}, FreshTTL)
				var got []string
				_ = service.Get(ctx, "key", &got)
				_, _ = service.GetStale(ctx, "key", &got)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	var got []string
	require.NoError(t, service.Get(ctx, "key", &got))
	assert.Equal(t, []string{"a", "b"}, got)
}
