package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"triviaroom/config"
	"triviaroom/handlers"
	"triviaroom/middleware"
	"triviaroom/routes"
	"triviaroom/services"
	"triviaroom/store"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()
	logger := newLogger(cfg)

	// Initialize Redis
	redisClient := config.InitRedis(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Initialize services
	entityStore := store.NewRedisStore(redisClient)
	locks := services.NewRoomLocks()
	triviaService := services.NewTriviaService(cfg.TriviaAPIURL, logger)
	gameService := services.NewGameService(entityStore, triviaService, locks, logger)
	teamService := services.NewTeamService(entityStore, locks, logger)

	// Initialize handlers
	gameHandler := handlers.NewGameHandler(gameService)
	teamHandler := handlers.NewTeamHandler(teamService)
	triviaHandler := handlers.NewTriviaHandler(triviaService)

	// Setup Gin router
	router := gin.Default()
	router.Use(middleware.CORS())
	routes.SetupRoutes(router, gameHandler, teamHandler, triviaHandler)

	// Start server
	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.LogFormat == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stdout)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
