package cache

import (
	"strings"

	"chesscoach.app/pgn-gateway/config/environment_variables"
)

// NewCacheService creates a cache service based on configuration
func NewCacheService() CacheService {
	cacheType := strings.ToLower(environment_variables.EnvironmentVariables.CACHE_TYPE)

	// Default to the in-memory cache if no cache type is specified
	if cacheType == "" {
		cacheType = "memory"
	}

	switch cacheType {
	case "noop":
		return NewNoOpCacheService()
	case "memory":
		return NewMemoryCacheService()
	default:
		// Fallback to memory for unknown types
		return NewMemoryCacheService()
	}
}
