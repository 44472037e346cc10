package main

import (
	"go.uber.org/zap"

	"github.com/mealfolio/backend/config"
	"github.com/mealfolio/backend/internal/database"
	"github.com/mealfolio/backend/internal/logger"
)

func main() {
	logger.Init()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("All migrations applied successfully")
}
