package infrastructure

import (
	"chesscoach.app/pgn-gateway/app/domain/pgnfile"
	"chesscoach.app/pgn-gateway/app/infrastructure/cache"
	"chesscoach.app/pgn-gateway/app/utils/httpclients/assetstore"
	"github.com/google/wire"
)

var InfrastructureProvider = wire.NewSet(
	cache.NewCacheService,
	assetstore.NewClient,
	wire.Bind(new(pgnfile.AssetSearcher), new(*assetstore.Client)),
)
