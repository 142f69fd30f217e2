package cache

import "time"

const (
	CacheVersion         = "v1"
	LevelFilesKeyPattern = CacheVersion + ":pgn:level:%s"
)

const (
	// FreshTTL is how long a level listing is served without consulting
	// the upstream asset store again.
	FreshTTL = 12 * time.Hour

	// MaxStaleness bounds how long an expired entry remains available to
	// the stale-read fallback before a sweep discards it.
	MaxStaleness = 72 * time.Hour
)
