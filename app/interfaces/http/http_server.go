package http

import (
	"fmt"

	"chesscoach.app/pgn-gateway/app/interfaces/http/middleware"
	"chesscoach.app/pgn-gateway/app/interfaces/http/routes/admin"
	"chesscoach.app/pgn-gateway/app/interfaces/http/routes/pgnfiles"
	"chesscoach.app/pgn-gateway/app/utils/logger"
	"github.com/gin-gonic/gin"
)

type HttpServer struct {
	engine       *gin.Engine
	pgnFileRoute *pgnfiles.PGNFileRoute
	cacheRoute   *admin.CacheRoute
}

func NewHttpServer(pgnFileRoute *pgnfiles.PGNFileRoute, cacheRoute *admin.CacheRoute) *HttpServer {
	gin.SetMode(gin.ReleaseMode)
	server := HttpServer{
		engine:       gin.New(),
		pgnFileRoute: pgnFileRoute,
		cacheRoute:   cacheRoute,
	}
	server.engine.Use(gin.Recovery())
	server.engine.Use(middleware.LoggerMiddleware(logger.GetLogger()))
	server.engine.Use(middleware.CORS())
	server.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, "ok")
	})
	return &server
}

func (httpServer *HttpServer) Run() error {
	port := 8080
	httpServer.pgnFileRoute.RegisterRouter(httpServer.engine.Group("/"))
	httpServer.cacheRoute.RegisterRouter(httpServer.engine.Group("/"))
	if err := httpServer.engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		return err
	}
	return nil
}
