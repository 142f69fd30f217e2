package pgnfiles

import (
	"net/http"
	"strings"

	"chesscoach.app/pgn-gateway/app/domain/common"
	"chesscoach.app/pgn-gateway/app/domain/pgnfile"
	"chesscoach.app/pgn-gateway/app/interfaces/http/responses"
	"chesscoach.app/pgn-gateway/app/utils/logger"
	"github.com/gin-gonic/gin"
)

// PGNFileRoute exposes the level file listing and prefetch endpoints.
type PGNFileRoute struct {
	pgnFileService *pgnfile.PGNFileService
}

// NewPGNFileRoute constructs a PGNFileRoute instance.
func NewPGNFileRoute(pgnFileService *pgnfile.PGNFileService) *PGNFileRoute {
	return &PGNFileRoute{
		pgnFileService: pgnFileService,
	}
}

// RegisterRouter wires the pgn file endpoints.
func (route *PGNFileRoute) RegisterRouter(router gin.IRouter) {
	router.GET("/pgn-files", route.GetPGNFiles)
	router.GET("/prefetch", route.PrefetchLevels)
}

// GetPGNFiles godoc
// @Summary     List PGN files for a level
// @Description Returns the classified PGN file listing for one level, served from cache when fresh.
// @Tags        pgn
// @Produce     json
// @Param       level query string true "level key (letters, digits, underscore)"
// @Success     200 {array} pgnfile.PGNFile
// @Failure     400 {object} responses.ErrorResponse
// @Failure     500 {object} responses.ErrorResponse
// @Router      /pgn-files [get]
func (route *PGNFileRoute) GetPGNFiles(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	level := reqCtx.Query("level")

	result, err := route.pgnFileService.FetchLevel(ctx, level)
	if err != nil {
		if common.IsValidationError(err) {
			reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
				Code:  "8e8c2d6e-4f4d-4a3e-9b7e-0c51c2a0a2d4",
				Error: err.Error(),
			})
			return
		}
		logger.GetLogger().Errorf("pgn files: fetch failed for level %s: %v", level, err)
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "f3a96b41-7d52-4c8e-8a0f-5b6f0f6f2b17",
			Error: err.Error(),
		})
		return
	}

	if result.Stale {
		reqCtx.Header("X-PGN-Cache", "stale")
	} else {
		reqCtx.Header("Cache-Control", "public, max-age=43200")
	}
	reqCtx.JSON(http.StatusOK, result.Files)
}

// PrefetchResponse acknowledges a prefetch request.
type PrefetchResponse struct {
	Object string   `json:"object"`
	Status string   `json:"status"`
	Levels []string `json:"levels"`
}

// PrefetchLevels godoc
// @Summary     Warm the cache for a set of levels
// @Description Queues background fetches for up to five levels that are not already cached and returns immediately.
// @Tags        pgn
// @Produce     json
// @Param       levels query string true "comma-separated level keys"
// @Success     202 {object} PrefetchResponse
// @Failure     400 {object} responses.ErrorResponse
// @Router      /prefetch [get]
func (route *PGNFileRoute) PrefetchLevels(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	levelsParam := reqCtx.Query("levels")
	if levelsParam == "" {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "2d1f7c55-9e0a-4a51-bb0c-9d6f8a3f41c9",
			Error: "levels query parameter is required",
		})
		return
	}

	levels := make([]string, 0)
	for _, level := range strings.Split(levelsParam, ",") {
		if trimmed := strings.TrimSpace(level); trimmed != "" {
			levels = append(levels, trimmed)
		}
	}

	queued := route.pgnFileService.Prefetch(ctx, levels)
	reqCtx.JSON(http.StatusAccepted, PrefetchResponse{
		Object: "pgn.prefetch",
		Status: "queued",
		Levels: queued,
	})
}
