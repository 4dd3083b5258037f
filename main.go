// main.go
package main

import (
	"context"
	"log"

	"cinemaspot-frontend/cmd"
	"cinemaspot-frontend/internal/data/apiclient"
	"cinemaspot-frontend/internal/store"
	"cinemaspot-frontend/internal/usecase"
	"cinemaspot-frontend/internal/wire"
	"cinemaspot-frontend/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("api_base_url", config.API.BaseURL),
		zap.Bool("debug", config.App.Debug),
	)

	// Session backend: Redis when configured, process memory otherwise
	var backend store.Backend
	if config.Redis.Enabled {
		redisBackend, err := store.NewRedisBackend(context.Background(), config.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer redisBackend.Close()
		backend = redisBackend
		logger.Info("Session store backed by redis", zap.String("addr", config.Redis.Addr))
	} else {
		backend = store.NewMemoryBackend()
		logger.Info("Session store backed by process memory")
	}

	sessions := store.NewSessionStore(backend, config.Session, logger)

	// Upstream API client
	client := apiclient.NewClient(config.API, logger)
	api := apiclient.NewAPI(client, logger)

	// Services and routing
	service := usecase.NewService(api, sessions, config, logger)
	app := wire.Wiring(service, sessions, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
