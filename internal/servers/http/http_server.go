package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"socketPaint/configs"
	"socketPaint/internal/handlers"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	ctx                context.Context
	configs            *configs.Config
	router             *gin.Engine
	restHandler        *handlers.RestHandler
	socketPaintHandler *handlers.SocketPaintHandler
	htmlHandler        *handlers.HtmlHandler
}

func NewHttpServer(
	ctx context.Context,
	configs *configs.Config,
	restHandler *handlers.RestHandler,
	socketPaintHandler *handlers.SocketPaintHandler,
	htmlHandler *handlers.HtmlHandler,
) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:                ctx,
			configs:            configs,
			restHandler:        restHandler,
			socketPaintHandler: socketPaintHandler,
			htmlHandler:        htmlHandler,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.initializeGin()
	hs.setupRoutes()

	server := hs.startServer()

	// Wait for interrupt signal to gracefully shut down the server
	hs.waitForShutdown(server)
}

func (hs *HttpServer) initializeGin() {
	hs.router = gin.Default()
	hs.router.LoadHTMLGlob("./web/*.html")
	hs.router.Static("/static", "./web/static")
}

func (hs *HttpServer) setupRoutes() {
	hs.router.GET("/", hs.htmlHandler.Index)
	hs.router.GET("/health", hs.restHandler.Health)
	hs.router.GET("/api/rooms", hs.restHandler.Rooms)
	hs.router.GET("/ws", hs.socketPaintHandler.HandleSocketPaintRoute)
}

func (hs *HttpServer) startServer() *http.Server {
	addr := fmt.Sprintf(":%d", hs.configs.Viper.GetInt("server.port"))
	server := &http.Server{
		Addr:    addr,
		Handler: hs.router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("http server started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	if err := server.Shutdown(hs.ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	hs.socketPaintHandler.CloseAllClients()

	log.Info().Msg("server exiting")
}
