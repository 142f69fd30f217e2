package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCacheService keeps the gateway's single-process cache. Fresh entries
// live in a TTL'd go-cache instance; a shadow map retains the last written
// value per key for the stale-read fallback until Delete, FlushAll, or a
// Sweep past MaxStaleness discards it.
//
// Values are stored as marshaled JSON, so an entry is always replaced as a
// whole and readers never observe a partially-written or aliased list.
type MemoryCacheService struct {
	fresh *gocache.Cache
	mu    sync.RWMutex
	stale map[string]staleEntry
}

type staleEntry struct {
	payload  []byte
	storedAt time.Time
}

// NewMemoryCacheService creates an in-memory cache service
func NewMemoryCacheService() CacheService {
	return &MemoryCacheService{
		fresh: gocache.New(FreshTTL, 30*time.Minute),
		stale: make(map[string]staleEntry),
	}
}

// Set stores a value and resets the key's TTL countdown
func (m *MemoryCacheService) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.fresh.Set(key, payload, expiration)
	m.stale[key] = staleEntry{payload: payload, storedAt: time.Now()}
	return nil
}

// Get retrieves a fresh value; expired entries behave as absent
func (m *MemoryCacheService) Get(ctx context.Context, key string, dest any) error {
	value, found := m.fresh.Get(key)
	if !found {
		return fmt.Errorf("%w: %s", ErrCacheMiss, key)
	}
	payload, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unexpected cache payload for key %s", key)
	}
	return json.Unmarshal(payload, dest)
}

// GetStale retrieves the last known value for a key regardless of freshness
func (m *MemoryCacheService) GetStale(ctx context.Context, key string, dest any) (bool, error) {
	m.mu.RLock()
	entry, found := m.stale[key]
	m.mu.RUnlock()
	if !found || time.Since(entry.storedAt) > MaxStaleness {
		return false, nil
	}
	if err := json.Unmarshal(entry.payload, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes a key from both the fresh layer and the stale shadow
func (m *MemoryCacheService) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fresh.Delete(key)
	delete(m.stale, key)
	return nil
}

// Exists checks if a fresh entry exists for a key
func (m *MemoryCacheService) Exists(ctx context.Context, key string) (bool, error) {
	_, found := m.fresh.Get(key)
	return found, nil
}

// FlushAll removes all entries
func (m *MemoryCacheService) FlushAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fresh.Flush()
	m.stale = make(map[string]staleEntry)
	return nil
}

// Sweep prunes stale copies past the maximum staleness bound. The fresh
// layer sweeps itself via go-cache's janitor.
func (m *MemoryCacheService) Sweep(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, entry := range m.stale {
		if time.Since(entry.storedAt) > MaxStaleness {
			delete(m.stale, key)
		}
	}
}

// Close releases the cache
func (m *MemoryCacheService) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fresh.Flush()
	m.stale = make(map[string]staleEntry)
	return nil
}
