package routes

import (
	"chesscoach.app/pgn-gateway/app/interfaces/http/routes/admin"
	"chesscoach.app/pgn-gateway/app/interfaces/http/routes/pgnfiles"
	"github.com/google/wire"
)

var RouteProvider = wire.NewSet(
	pgnfiles.NewPGNFileRoute,
	admin.NewCacheRoute,
)
