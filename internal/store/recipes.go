package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/mealfolio/backend/internal/model"
)

// RecipeStore handles recipe persistence
type RecipeStore struct {
	db *gorm.DB
}

// NewRecipeStore creates a new RecipeStore instance
func NewRecipeStore(db *gorm.DB) *RecipeStore {
	return &RecipeStore{db: db}
}

// FindByLabels returns every stored recipe carrying all of the requested diet
// and health labels. Labels must already be in Title-Case-with-hyphens form;
// rows are written in that form, so matching is exact. With no labels at all
// the whole collection qualifies.
func (s *RecipeStore) FindByLabels(ctx context.Context, dietLabels, healthLabels []string) ([]model.Recipe, error) {
	query := s.db.WithContext(ctx).Model(&model.Recipe{})

	// JSONB needs a text cast before LIKE on PostgreSQL. The label is matched
	// with its surrounding quotes so "Low" never matches "Low-Carb".
	dietColumn, healthColumn := "diet_labels", "health_labels"
	if s.db.Dialector.Name() == "postgres" {
		dietColumn, healthColumn = "diet_labels::text", "health_labels::text"
	}

	for _, label := range dietLabels {
		query = query.Where(dietColumn+" LIKE ?", `%"`+label+`"%`)
	}
	for _, label := range healthLabels {
		query = query.Where(healthColumn+" LIKE ?", `%"`+label+`"%`)
	}

	var recipes []model.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// InsertMany persists a batch of recipes in a single create. The caller must
// not pass an empty batch.
func (s *RecipeStore) InsertMany(ctx context.Context, recipes []model.Recipe) error {
	return s.db.WithContext(ctx).Create(&recipes).Error
}

// Count returns the number of stored recipes
func (s *RecipeStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
