package database

import (
	"gorm.io/gorm"

	"github.com/mealfolio/backend/internal/logger"
	"github.com/mealfolio/backend/internal/model"
)

// Migrate brings the schema up to date. GORM auto-migration covers the whole
// model set; the recipes table and its JSONB columns are created on first run.
func Migrate(db *gorm.DB) error {
	logger.Info("running database migrations")
	return db.AutoMigrate(
		&model.Recipe{},
	)
}
