package admin

import (
	"net/http"

	"chesscoach.app/pgn-gateway/app/domain/pgnfile"
	"chesscoach.app/pgn-gateway/app/infrastructure/cache"
	"chesscoach.app/pgn-gateway/app/interfaces/http/responses"
	"chesscoach.app/pgn-gateway/app/utils/logger"
	"chesscoach.app/pgn-gateway/config/environment_variables"
	"github.com/gin-gonic/gin"
)

// CacheRoute exposes administrative cache operations.
type CacheRoute struct {
	cacheService cache.CacheService
}

// NewCacheRoute constructs a CacheRoute instance.
func NewCacheRoute(cacheService cache.CacheService) *CacheRoute {
	return &CacheRoute{
		cacheService: cacheService,
	}
}

// RegisterRouter wires the administrative cache endpoints.
func (route *CacheRoute) RegisterRouter(router gin.IRouter) {
	router.POST("/clear-cache", route.ClearCache)
}

// ClearCacheRequest selects what to invalidate. An empty level flushes the
// whole cache.
type ClearCacheRequest struct {
	Level  string `json:"level"`
	ApiKey string `json:"apiKey"`
}

// CacheInvalidateResponse represents the result of a cache invalidation request.
type CacheInvalidateResponse struct {
	Object  string `json:"object"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ClearCache godoc
// @Summary     Invalidate cached level listings
// @Description Removes one level's cache entry, or flushes the whole cache when no level is given. Requires the admin api key.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       request body ClearCacheRequest true "invalidation request"
// @Success     200 {object} CacheInvalidateResponse
// @Failure     400 {object} responses.ErrorResponse
// @Failure     401 {object} responses.ErrorResponse
// @Router      /clear-cache [post]
func (route *CacheRoute) ClearCache(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var request ClearCacheRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "6c0d2c9f-3a6b-48f0-9d3e-2f1f2b8c7a54",
			Error: "invalid request body",
		})
		return
	}

	adminKey := environment_variables.EnvironmentVariables.ADMIN_API_KEY
	if adminKey == "" || request.ApiKey != adminKey {
		reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
			Code:  "a1b8f0d3-5e27-4f6c-8d94-7c3a1e9b6f02",
			Error: "invalid admin api key",
		})
		return
	}

	if request.Level != "" {
		if !pgnfile.ValidLevelKey(request.Level) {
			reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
				Code:  "4f7e9a20-1c3d-4b58-a6f1-8d2c5b9e3a76",
				Error: "level must contain only letters, digits, or underscores",
			})
			return
		}
		if err := route.cacheService.Delete(ctx, pgnfile.LevelCacheKey(request.Level)); err != nil {
			logger.GetLogger().Errorf("admin cache: failed to invalidate level %s: %v", request.Level, err)
			reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
				Code:  "b0c4f1c8-2a3b-4ad4-8b1d-7a2124d7c7b1",
				Error: "failed to invalidate cache",
			})
			return
		}
		reqCtx.JSON(http.StatusOK, CacheInvalidateResponse{
			Object:  "cache.invalidation",
			Status:  "ok",
			Message: "cache invalidated for level " + request.Level,
		})
		return
	}

	if err := route.cacheService.FlushAll(ctx); err != nil {
		logger.GetLogger().Errorf("admin cache: failed to flush cache: %v", err)
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "d9e2a7c4-6b18-4f3a-9c05-1e8f4d2b7a63",
			Error: "failed to invalidate cache",
		})
		return
	}

	reqCtx.JSON(http.StatusOK, CacheInvalidateResponse{
		Object:  "cache.invalidation",
		Status:  "ok",
		Message: "cache invalidated",
	})
}
