//go:build wireinject

package main

import (
	"chesscoach.app/pgn-gateway/app/domain"
	"chesscoach.app/pgn-gateway/app/infrastructure"
	"chesscoach.app/pgn-gateway/app/interfaces/http"
	"chesscoach.app/pgn-gateway/app/interfaces/http/routes"
	"github.com/google/wire"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		routes.RouteProvider,
		http.NewHttpServer,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
