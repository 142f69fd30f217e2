package domain

import (
	"chesscoach.app/pgn-gateway/app/domain/cron"
	"chesscoach.app/pgn-gateway/app/domain/pgnfile"
	"github.com/google/wire"
)

var ServiceProvider = wire.NewSet(
	pgnfile.NewService,
	cron.NewService,
)
