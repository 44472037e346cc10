package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mealfolio/backend/internal/model"
	"github.com/mealfolio/backend/internal/provider"
)

// MockRecipeStore is a mock implementation of the recipe store
type MockRecipeStore struct {
	mock.Mock
}

// FindByLabels mocks the FindByLabels method
func (m *MockRecipeStore) FindByLabels(ctx context.Context, dietLabels, healthLabels []string) ([]model.Recipe, error) {
	args := m.Called(ctx, dietLabels, healthLabels)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

// InsertMany mocks the InsertMany method
func (m *MockRecipeStore) InsertMany(ctx context.Context, recipes []model.Recipe) error {
	args := m.Called(ctx, recipes)
	return args.Error(0)
}

// MockRecipeProvider is a mock implementation of the provider gateway
type MockRecipeProvider struct {
	mock.Mock
}

// Search mocks the Search method
func (m *MockRecipeProvider) Search(ctx context.Context, dietFilters, healthFilters []string) (*provider.SearchResponse, error) {
	args := m.Called(ctx, dietFilters, healthFilters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.SearchResponse), args.Error(1)
}

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// FindRecipes mocks the FindRecipes method
func (m *MockRecipeService) FindRecipes(ctx context.Context, dietLabels, healthLabels []string) ([]model.Recipe, error) {
	args := m.Called(ctx, dietLabels, healthLabels)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}
