package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mealfolio/backend/internal/mocks"
	"github.com/mealfolio/backend/internal/model"
	"github.com/mealfolio/backend/internal/provider"
)

func storedRecipes(n int) []model.Recipe {
	recipes := make([]model.Recipe, 0, n)
	for i := 0; i < n; i++ {
		recipes = append(recipes, model.Recipe{
			Title:       fmt.Sprintf("Stored %d", i),
			Ingredients: model.StringArray{"salt"},
		})
	}
	return recipes
}

func floatPtr(v float64) *float64 { return &v }

func providerHit(label string) provider.Hit {
	return provider.Hit{Recipe: provider.Recipe{
		Label:           label,
		Source:          "Example Kitchen",
		URL:             "https://example.com/" + label,
		Yield:           floatPtr(4),
		Calories:        floatPtr(800),
		DietLabels:      []string{"low-carb"},
		HealthLabels:    []string{"vegetarian"},
		IngredientLines: []string{"1 thing"},
	}}
}

func providerHits(n int) []provider.Hit {
	hits := make([]provider.Hit, 0, n)
	for i := 0; i < n; i++ {
		hits = append(hits, providerHit(fmt.Sprintf("Fetched %d", i)))
	}
	return hits
}

func TestFindRecipesStoreSufficientSkipsProvider(t *testing.T) {
	store := new(mocks.MockRecipeStore)
	prov := new(mocks.MockRecipeProvider)
	svc := NewRecipeService(store, prov)

	store.On("FindByLabels", mock.Anything, []string{"Low-Carb"}, []string{"Vegetarian"}).
		Return(storedRecipes(15), nil)

	recipes, err := svc.FindRecipes(context.Background(), []string{"low-carb"}, []string{"VEGETARIAN"})
	require.NoError(t, err)

	assert.Len(t, recipes, 12)
	seen := make(map[string]bool)
	for _, r := range recipes {
		assert.Contains(t, r.Title, "Stored")
		assert.False(t, seen[r.Title])
		seen[r.Title] = true
	}

	prov.AssertNotCalled(t, "Search")
	store.AssertExpectations(t)
}

func TestFindRecipesProviderReplacesStoreMatches(t *testing.T) {
	store := new(mocks.MockRecipeStore)
	prov := new(mocks.MockRecipeProvider)
	svc := NewRecipeService(store, prov)

	store.On("FindByLabels", mock.Anything, []string{"Low-Carb"}, []string{}).
		Return(storedRecipes(2), nil)
	prov.On("Search", mock.Anything, []string{"low-carb"}, []string{}).
		Return(&provider.SearchResponse{Hits: providerHits(3)}, nil)
	store.On("InsertMany", mock.Anything, mock.MatchedBy(func(batch []model.Recipe) bool {
		return len(batch) == 3
	})).Return(nil)

	recipes, err := svc.FindRecipes(context.Background(), []string{"Low-Carb"}, nil)
	require.NoError(t, err)

	// Store matches are replaced, not merged.
	assert.Len(t, recipes, 3)
	for _, r := range recipes {
		assert.Contains(t, r.Title, "Fetched")
	}

	store.AssertExpectations(t)
	prov.AssertExpectations(t)
	prov.AssertNumberOfCalls(t, "Search", 1)
}

func TestFindRecipesNoHitsContainer(t *testing.T) {
	store := new(mocks.MockRecipeStore)
	prov := new(mocks.MockRecipeProvider)
	svc := NewRecipeService(store, prov)

	store.On("FindByLabels", mock.Anything, []string{}, []string{"Vegan"}).
		Return([]model.Recipe{}, nil)
	prov.On("Search", mock.Anything, []string{}, []string{"vegan"}).
		Return(&provider.SearchResponse{}, nil)

	recipes, err := svc.FindRecipes(context.Background(), nil, []string{"vegan"})
	assert.ErrorIs(t, err, ErrNoRecipesFound)
	assert.Nil(t, recipes)

	store.AssertNotCalled(t, "InsertMany")
}

func TestFindRecipesEmptyHitsContainer(t *testing.T) {
	store := new(mocks.MockRecipeStore)
	prov := new(mocks.MockRecipeProvider)
	svc := NewRecipeService(store, prov)

	store.On("FindByLabels", mock.Anything, []string{}, []string{"Vegan"}).
		Return([]model.Recipe{}, nil)
	prov.On("Search", mock.Anything, []string{}, []string{"vegan"}).
		Return(&provider.SearchResponse{Hits: []provider.Hit{}}, nil)

	recipes, err := svc.FindRecipes(context.Background(), nil, []string{"vegan"})
	require.NoError(t, err)

	// Present-but-empty hits are a valid empty result, not a miss.
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)
	store.AssertNotCalled(t, "InsertMany")
}

func TestFindRecipesPersistsFirstHundredHits(t *testing.T) {
	store := new(mocks.MockRecipeStore)
	prov := new(mocks.MockRecipeProvider)
	svc := NewRecipeService(store, prov)

	store.On("FindByLabels", mock.Anything, []string{}, []string{}).
		Return([]model.Recipe{}, nil)
	prov.On("Search", mock.Anything, []string{}, []string{}).
		Return(&provider.SearchResponse{Hits: providerHits(150)}, nil)

	var persisted []model.Recipe
	store.On("InsertMany", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).([]model.Recipe)
		}).
		Return(nil)

	recipes, err := svc.FindRecipes(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Len(t, persisted, 100)
	assert.Equal(t, "Fetched 0", persisted[0].Title)
	assert.Equal(t, "Fetched 99", persisted[99].Title)
	assert.Len(t, recipes, 12)
}

func TestFindRecipesStoreError(t *testing.T) {
	store := new(mocks.MockRecipeStore)
	prov := new(mocks.MockRecipeProvider)
	svc := NewRecipeService(store, prov)

	store.On("FindByLabels", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	recipes, err := svc.FindRecipes(context.Background(), []string{"vegan"}, nil)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoRecipesFound)
	assert.Nil(t, recipes)
	prov.AssertNotCalled(t, "Search")
}

func TestFindRecipesProviderError(t *testing.T) {
	store := new(mocks.MockRecipeStore)
	prov := new(mocks.MockRecipeProvider)
	svc := NewRecipeService(store, prov)

	store.On("FindByLabels", mock.Anything, mock.Anything, mock.Anything).
		Return([]model.Recipe{}, nil)
	prov.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("provider returned status 500"))

	_, err := svc.FindRecipes(context.Background(), []string{"vegan"}, nil)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoRecipesFound)
	store.AssertNotCalled(t, "InsertMany")
}

func TestFindRecipesInsertErrorAborts(t *testing.T) {
	store := new(mocks.MockRecipeStore)
	prov := new(mocks.MockRecipeProvider)
	svc := NewRecipeService(store, prov)

	store.On("FindByLabels", mock.Anything, mock.Anything, mock.Anything).
		Return([]model.Recipe{}, nil)
	prov.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return(&provider.SearchResponse{Hits: providerHits(3)}, nil)
	store.On("InsertMany", mock.Anything, mock.Anything).
		Return(errors.New("duplicate key"))

	recipes, err := svc.FindRecipes(context.Background(), []string{"vegan"}, nil)
	assert.Error(t, err)
	assert.Nil(t, recipes)
}

func TestRecipeFromHitMapsFields(t *testing.T) {
	hit := provider.Hit{Recipe: provider.Recipe{
		Label:           "Roasted Cauliflower",
		Image:           "https://img.example.com/cauli.jpg",
		Source:          "Veg Monthly",
		URL:             "https://example.com/cauli",
		Yield:           floatPtr(4),
		Calories:        floatPtr(1002),
		TotalTime:       floatPtr(35),
		DietLabels:      []string{"low-carb", "LOW-FAT"},
		HealthLabels:    []string{"vegan"},
		IngredientLines: []string{"1 cauliflower", "2 tbsp olive oil"},
		CuisineType:     []string{"mediterranean"},
		MealType:        []string{"lunch/dinner"},
		DishType:        []string{"main course"},
		TotalNutrients: map[string]provider.Nutrient{
			"PROCNT": {Label: "Protein", Quantity: 12.4, Unit: "g"},
		},
	}}

	recipe := recipeFromHit(hit)

	assert.NotEqual(t, uuid.Nil, recipe.ID)
	assert.Equal(t, "Roasted Cauliflower", recipe.Title)
	assert.Equal(t, "Veg Monthly", recipe.Source)
	assert.Equal(t, "https://example.com/cauli", recipe.InstructionsURL)
	assert.Equal(t, model.StringArray{"Low-Carb", "Low-Fat"}, recipe.DietLabels)
	assert.Equal(t, model.StringArray{"Vegan"}, recipe.HealthLabels)
	assert.Equal(t, model.StringArray{"1 cauliflower", "2 tbsp olive oil"}, recipe.Ingredients)

	require.NotNil(t, recipe.ServingSize)
	assert.Equal(t, 4.0, *recipe.ServingSize)
	require.NotNil(t, recipe.CaloriesPerServing)
	assert.Equal(t, 250.5, *recipe.CaloriesPerServing)
	require.NotNil(t, recipe.TotalTime)
	assert.Equal(t, 35, *recipe.TotalTime)
	assert.Equal(t, "Protein", recipe.TotalNutrients["PROCNT"].Label)
}

func TestRecipeFromHitDefaultsAndAbsentNumerics(t *testing.T) {
	recipe := recipeFromHit(provider.Hit{Recipe: provider.Recipe{
		Label:           "Mystery Stew",
		Calories:        floatPtr(500),
		IngredientLines: []string{"unknown"},
	}})

	assert.Equal(t, "Unknown", recipe.Source)
	assert.Equal(t, "No URL available", recipe.InstructionsURL)

	// No yield: no serving size and no derived calories, despite calories
	// being present.
	assert.Nil(t, recipe.ServingSize)
	assert.Nil(t, recipe.CaloriesPerServing)
	assert.Nil(t, recipe.TotalTime)
}

func TestRecipeFromHitZeroYield(t *testing.T) {
	recipe := recipeFromHit(provider.Hit{Recipe: provider.Recipe{
		Label:    "Zero Yield",
		Yield:    floatPtr(0),
		Calories: floatPtr(500),
	}})

	require.NotNil(t, recipe.ServingSize)
	assert.Equal(t, 0.0, *recipe.ServingSize)
	assert.Nil(t, recipe.CaloriesPerServing)
}

func TestRecipeFromHitZeroTotalTimeIsKept(t *testing.T) {
	recipe := recipeFromHit(provider.Hit{Recipe: provider.Recipe{
		Label:     "Instant Snack",
		TotalTime: floatPtr(0),
	}})

	require.NotNil(t, recipe.TotalTime)
	assert.Equal(t, 0, *recipe.TotalTime)
}

func TestSampleRecipesSmallSetKeepsEverything(t *testing.T) {
	input := storedRecipes(5)

	sampled := sampleRecipes(input)

	assert.Len(t, sampled, 5)
	titles := make(map[string]bool)
	for _, r := range sampled {
		titles[r.Title] = true
	}
	for _, r := range input {
		assert.True(t, titles[r.Title])
	}
}

func TestSampleRecipesTruncatesToTwelveDistinct(t *testing.T) {
	input := storedRecipes(40)

	sampled := sampleRecipes(input)

	assert.Len(t, sampled, 12)
	titles := make(map[string]bool)
	for _, r := range sampled {
		assert.False(t, titles[r.Title])
		titles[r.Title] = true
	}

	// The caller's slice keeps its order.
	assert.Equal(t, "Stored 0", input[0].Title)
	assert.Equal(t, "Stored 39", input[39].Title)
}
