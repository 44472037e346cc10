package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mealfolio/backend/config"
	"github.com/mealfolio/backend/internal/database"
	"github.com/mealfolio/backend/internal/logger"
	"github.com/mealfolio/backend/internal/provider"
	"github.com/mealfolio/backend/internal/render"
	"github.com/mealfolio/backend/internal/server"
	"github.com/mealfolio/backend/internal/service"
	"github.com/mealfolio/backend/internal/store"
)

func main() {
	logger.Init()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize database
	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Provider responses are cached in Redis; lookups still work without it
	cache, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, provider caching disabled", zap.Error(err))
		cache = nil
	}

	// Printed documents are archived to S3 when credentials are available
	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		logger.Warn("S3 unavailable, document archiving disabled", zap.Error(err))
		s3Config = nil
	}

	// Initialize services
	recipeStore := store.NewRecipeStore(db)
	providerClient := provider.NewClient(cfg, cache)
	recipeService := service.NewRecipeService(recipeStore, providerClient)
	documentService := service.NewDocumentService(render.NewPDFRenderer(), s3Config)

	// Create and start server
	srv := server.New(cfg, db, recipeService, documentService)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("Server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("Received signal", zap.String("signal", sig.String()))
	}

	// Gracefully shutdown the server
	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		logger.Fatal("Server shutdown error", zap.Error(err))
	}
	logger.Info("Server stopped")
}
