package pgnfile

import (
	"context"
	"fmt"
	"time"

	"chesscoach.app/pgn-gateway/app/domain/common"
	"chesscoach.app/pgn-gateway/app/infrastructure/cache"
	"chesscoach.app/pgn-gateway/app/utils/functional"
	"chesscoach.app/pgn-gateway/app/utils/httpclients/assetstore"
	"chesscoach.app/pgn-gateway/app/utils/logger"
)

const (
	// upstreamTimeout bounds a single asset store query.
	upstreamTimeout = 8 * time.Second

	// MaxPrefetchLevels caps how many levels one prefetch request may warm.
	MaxPrefetchLevels = 5
)

// AssetSearcher is the upstream query contract consumed by the service.
type AssetSearcher interface {
	SearchLevel(ctx context.Context, level string) (*assetstore.SearchResponse, error)
}

// FetchResult carries a classified listing plus whether it was served from
// the stale fallback after an upstream failure.
type FetchResult struct {
	Files []PGNFile
	Stale bool
}

type PGNFileService struct {
	searcher     AssetSearcher
	cacheService cache.CacheService
}

func NewService(searcher AssetSearcher, cacheService cache.CacheService) *PGNFileService {
	return &PGNFileService{
		searcher:     searcher,
		cacheService: cacheService,
	}
}

// LevelCacheKey returns the cache key holding one level's classified listing.
func LevelCacheKey(level string) string {
	return fmt.Sprintf(cache.LevelFilesKeyPattern, level)
}

// FetchLevel returns the classified file listing for a level: cache first,
// then a deadline-bounded upstream query that repopulates the cache. When the
// query fails and a stale copy is still retrievable, the stale copy is served
// instead of the error.
func (s *PGNFileService) FetchLevel(ctx context.Context, level string) (*FetchResult, error) {
	if !ValidLevelKey(level) {
		return nil, common.NewValidationError("level must contain only letters, digits, or underscores")
	}

	var cached []PGNFile
	if err := s.cacheService.Get(ctx, LevelCacheKey(level), &cached); err == nil {
		return &FetchResult{Files: cached}, nil
	}

	files, err := s.fetchAndStore(ctx, level)
	if err != nil {
		var stale []PGNFile
		if found, staleErr := s.cacheService.GetStale(ctx, LevelCacheKey(level), &stale); staleErr == nil && found {
			logger.GetLogger().Warnf("pgn files: serving stale cache for level %s after upstream failure: %v", level, err)
			return &FetchResult{Files: stale, Stale: true}, nil
		}
		return nil, err
	}
	return &FetchResult{Files: files}, nil
}

// Prefetch warms the cache for up to MaxPrefetchLevels levels that are not
// already cached. Fetches run in their own goroutines; the returned slice
// lists the levels that were actually queued. Individual failures are logged
// and never reach the caller.
func (s *PGNFileService) Prefetch(ctx context.Context, levels []string) []string {
	levels = functional.Distinct(levels)
	if len(levels) > MaxPrefetchLevels {
		levels = levels[:MaxPrefetchLevels]
	}

	queued := make([]string, 0, len(levels))
	for _, level := range levels {
		if !ValidLevelKey(level) {
			logger.GetLogger().Warnf("prefetch: skipping invalid level key %q", level)
			continue
		}
		if cached, err := s.cacheService.Exists(ctx, LevelCacheKey(level)); err == nil && cached {
			continue
		}
		queued = append(queued, level)
		go s.prefetchLevel(level)
	}
	return queued
}

func (s *PGNFileService) prefetchLevel(level string) {
	defer func() {
		if r := recover(); r != nil {
			logger.GetLogger().Errorf("prefetch: panic while warming level %s: %v", level, r)
		}
	}()

	if _, err := s.fetchAndStore(context.Background(), level); err != nil {
		logger.GetLogger().Warnf("prefetch: failed to warm level %s: %v", level, err)
	}
}

// fetchAndStore performs the upstream query with a hard deadline, classifies
// the result, and replaces the level's cache entry. The cache is left
// untouched on any failure.
func (s *PGNFileService) fetchAndStore(ctx context.Context, level string) ([]PGNFile, error) {
	queryCtx, cancel := context.WithTimeout(ctx, upstreamTimeout)
	defer cancel()

	response, err := s.searcher.SearchLevel(queryCtx, level)
	if err != nil {
		return nil, common.NewUpstreamError(fmt.Sprintf("asset store query failed for level %s: %v", level, err))
	}
	if response == nil || response.Resources == nil {
		return nil, common.NewUpstreamError(fmt.Sprintf("asset store returned a malformed result for level %s", level))
	}

	files := Classify(functional.Map(response.Resources, func(resource assetstore.Resource) PGNFile {
		return PGNFile{
			URL:         resource.SecureURL,
			Filename:    resource.PublicID,
			DisplayName: DisplayNameOf(resource.PublicID),
		}
	}))

	if err := s.cacheService.Set(ctx, LevelCacheKey(level), files, cache.FreshTTL); err != nil {
		logger.GetLogger().Warnf("pgn files: failed to cache level %s: %v", level, err)
	}
	return files, nil
}
