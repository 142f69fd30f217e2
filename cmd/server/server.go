package main

import (
	"context"

	"chesscoach.app/pgn-gateway/app/domain/cron"
	"chesscoach.app/pgn-gateway/app/interfaces/http"
	"chesscoach.app/pgn-gateway/app/utils/httpclients/assetstore"
	"chesscoach.app/pgn-gateway/config/environment_variables"
	"github.com/mileusna/crontab"
)

type Application struct {
	HttpServer  *http.HttpServer
	CronService *cron.CronService
}

func (application *Application) Start() {
	if err := application.HttpServer.Run(); err != nil {
		panic(err)
	}
}

func init() {
	environment_variables.EnvironmentVariables.LoadFromEnv()
	assetstore.Init()
}

func main() {
	application, err := CreateApplication()
	if err != nil {
		panic(err)
	}
	ctab := crontab.New()
	application.CronService.Start(context.Background(), ctab)
	application.Start()
}
