package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chesscoach.app/pgn-gateway/app/domain/pgnfile"
	"chesscoach.app/pgn-gateway/app/infrastructure/cache"
	"chesscoach.app/pgn-gateway/config/environment_variables"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(cacheService cache.CacheService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewCacheRoute(cacheService).RegisterRouter(engine.Group("/"))
	return engine
}

func postClearCache(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/clear-cache", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(recorder, request)
	return recorder
}

func TestClearCacheRejectsInvalidApiKey(t *testing.T) {
	environment_variables.EnvironmentVariables.ADMIN_API_KEY = "secret"
	engine := newTestRouter(cache.NewMemoryCacheService())

	recorder := postClearCache(engine, `{"apiKey":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestClearCacheRejectsWhenAdminKeyUnset(t *testing.T) {
	environment_variables.EnvironmentVariables.ADMIN_API_KEY = ""
	engine := newTestRouter(cache.NewMemoryCacheService())

	recorder := postClearCache(engine, `{"apiKey":""}`)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestClearCacheRejectsMalformedBody(t *testing.T) {
	environment_variables.EnvironmentVariables.ADMIN_API_KEY = "secret"
	engine := newTestRouter(cache.NewMemoryCacheService())

	recorder := postClearCache(engine, `not json`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestClearCacheInvalidatesSingleLevel(t *testing.T) {
	ctx := context.Background()
	environment_variables.EnvironmentVariables.ADMIN_API_KEY = "secret"
	cacheService := cache.NewMemoryCacheService()
	require.NoError(t, cacheService.Set(ctx, pgnfile.LevelCacheKey("beginner"), []string{"a"}, cache.FreshTTL))
	require.NoError(t, cacheService.Set(ctx, pgnfile.LevelCacheKey("advanced"), []string{"b"}, cache.FreshTTL))
	engine := newTestRouter(cacheService)

	recorder := postClearCache(engine, `{"level":"beginner","apiKey":"secret"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	exists, err := cacheService.Exists(ctx, pgnfile.LevelCacheKey("beginner"))
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = cacheService.Exists(ctx, pgnfile.LevelCacheKey("advanced"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestClearCacheRejectsInvalidLevelKey(t *testing.T) {
	environment_variables.EnvironmentVariables.ADMIN_API_KEY = "secret"
	engine := newTestRouter(cache.NewMemoryCacheService())

	recorder := postClearCache(engine, `{"level":"bad key!","apiKey":"secret"}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestClearCacheFlushesEverythingWithoutLevel(t *testing.T) {
	ctx := context.Background()
	environment_variables.EnvironmentVariables.ADMIN_API_KEY = "secret"
	cacheService := cache.NewMemoryCacheService()
	require.NoError(t, cacheService.Set(ctx, pgnfile.LevelCacheKey("beginner"), []string{"a"}, cache.FreshTTL))
	require.NoError(t, cacheService.Set(ctx, pgnfile.LevelCacheKey("advanced"), []string{"b"}, cache.FreshTTL))
	engine := newTestRouter(cacheService)

	recorder := postClearCache(engine, `{"apiKey":"secret"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "cache.invalidation")

	for _, level := range []string{"beginner", "advanced"} {
		exists, err := cacheService.Exists(ctx, pgnfile.LevelCacheKey(level))
		require.NoError(t, err)
		assert.False(t, exists)
	}
}
