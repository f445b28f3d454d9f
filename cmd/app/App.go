package app

import (
	"context"
	"os"
	"socketPaint/configs"
	"socketPaint/internal/handlers"
	"socketPaint/internal/repositories"
	"socketPaint/internal/servers/database"
	"socketPaint/internal/servers/http"
	"socketPaint/internal/services"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.initializeLogger()
	app.initializeConfigs()
	app.initializeRedis()

	db := database.GetDB(app.configs)
	paintRepo := repositories.NewPaintRepository(db)

	roomCacheService := services.NewRoomCacheService(paintRepo)
	if err := roomCacheService.Load(); err != nil {
		log.Fatal().Err(err).Msg("failed to load room cache from store")
	}
	paintService := services.NewPaintService(paintRepo, roomCacheService)

	socketPaintHandler := handlers.NewSocketPaintHandler(app.redis, app.ctx, paintService, app.configs)
	htmlHandler := handlers.NewHtmlHandler()
	restHandler := handlers.NewRestHandler(paintService, socketPaintHandler)

	http.NewHttpServer(
		app.ctx,
		app.configs,
		restHandler,
		socketPaintHandler,
		htmlHandler,
	).Run()
}

func (app *App) initializeLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr: app.configs.Viper.GetString("redis.addr"),
	})
}

func (app *App) initializeConfigs() {
	app.configs = configs.GetConfig()
}
