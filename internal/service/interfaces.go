package service

import (
	"context"

	"github.com/mealfolio/backend/internal/model"
	"github.com/mealfolio/backend/internal/provider"
)

// IRecipeStore defines the persistence operations the recipe service needs
type IRecipeStore interface {
	FindByLabels(ctx context.Context, dietLabels, healthLabels []string) ([]model.Recipe, error)
	InsertMany(ctx context.Context, recipes []model.Recipe) error
}

// IRecipeProvider defines the external recipe search gateway
type IRecipeProvider interface {
	Search(ctx context.Context, dietFilters, healthFilters []string) (*provider.SearchResponse, error)
}

// IRecipeService defines the interface for recipe lookups
type IRecipeService interface {
	FindRecipes(ctx context.Context, dietLabels, healthLabels []string) ([]model.Recipe, error)
}

// IDocumentService defines the interface for printable document operations
type IDocumentService interface {
	PrintRecipes(ctx context.Context, recipes []model.Recipe) (*Document, error)
}
