package cron

import (
	"context"

	"chesscoach.app/pgn-gateway/app/domain/pgnfile"
	"chesscoach.app/pgn-gateway/app/infrastructure/cache"
	"chesscoach.app/pgn-gateway/app/utils/logger"
	"chesscoach.app/pgn-gateway/config/environment_variables"
	"github.com/mileusna/crontab"
)

type CronService struct {
	CacheService   cache.CacheService
	PGNFileService *pgnfile.PGNFileService
}

func NewService(cacheService cache.CacheService, pgnFileService *pgnfile.PGNFileService) *CronService {
	return &CronService{
		CacheService:   cacheService,
		PGNFileService: pgnFileService,
	}
}

func (cs *CronService) Start(ctx context.Context, ctab *crontab.Crontab) {
	cs.warmConfiguredLevels(ctx)

	ctab.AddJob("0 * * * *", func() {
		cs.CacheService.Sweep(ctx)
		environment_variables.EnvironmentVariables.LoadFromEnv()
	})
}

func (cs *CronService) warmConfiguredLevels(ctx context.Context) {
	if cs == nil || cs.PGNFileService == nil {
		return
	}

	levels := environment_variables.EnvironmentVariables.PREFETCH_LEVELS
	if len(levels) == 0 {
		return
	}
	queued := cs.PGNFileService.Prefetch(ctx, levels)
	logger.GetLogger().Infof("cron service: warming pgn cache for levels %v", queued)
}
