// main.go
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"hotel-reservation/cmd"
	"hotel-reservation/internal/data/repository"
	"hotel-reservation/internal/wire"
	"hotel-reservation/pkg/storage"
	"hotel-reservation/pkg/utils"
)

// storagePrefix namespaces every persisted key.
const storagePrefix = "hrs_"

func main() {
	ctx := context.Background()

	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("storage", config.Storage.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	// Open durable storage
	store, err := storage.Open(ctx, config, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	durable := storage.NewAdapter(store, storagePrefix, logger)
	defer durable.Close()

	// Drafts live only as long as the process
	volatile := storage.NewAdapter(storage.NewMemoryStore(), storagePrefix, logger)

	// Initialize all repositories
	repos := repository.NewRepository(ctx, durable, volatile, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	if err := app.Service.Auth.SeedAdmin(ctx); err != nil {
		logger.Error("Failed to seed admin account", zap.Error(err))
	}

	// Start server
	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
