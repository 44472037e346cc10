package service

import (
	"context"
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mealfolio/backend/internal/logger"
	"github.com/mealfolio/backend/internal/model"
	"github.com/mealfolio/backend/internal/normalize"
	"github.com/mealfolio/backend/internal/provider"
)

const (
	// maxResults caps how many recipes a lookup returns.
	maxResults = 12
	// persistLimit caps how many provider hits are stored per lookup.
	persistLimit = 100
)

// ErrNoRecipesFound means neither the store nor the provider produced a
// usable result set for the requested labels.
var ErrNoRecipesFound = errors.New("no recipes found")

// RecipeService answers recipe lookups from the local store first and falls
// back to the external provider when the store runs short.
type RecipeService struct {
	store    IRecipeStore
	provider IRecipeProvider
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(store IRecipeStore, provider IRecipeProvider) *RecipeService {
	return &RecipeService{
		store:    store,
		provider: provider,
	}
}

// FindRecipes returns at most 12 recipes matching every requested diet and
// health label. Stored recipes satisfy the lookup outright when there are at
// least 12 of them; otherwise the provider is queried once and its results
// replace the store matches entirely, with the first 100 hits persisted for
// future lookups. A provider response without a hits container means nothing
// matched anywhere and surfaces as ErrNoRecipesFound.
func (s *RecipeService) FindRecipes(ctx context.Context, dietLabels, healthLabels []string) ([]model.Recipe, error) {
	storeDiet := normalize.Labels(dietLabels)
	storeHealth := normalize.Labels(healthLabels)

	matches, err := s.store.FindByLabels(ctx, storeDiet, storeHealth)
	if err != nil {
		return nil, err
	}
	logger.Debug("store lookup finished",
		zap.Strings("diet", storeDiet),
		zap.Strings("health", storeHealth),
		zap.Int("matches", len(matches)),
	)

	if len(matches) >= maxResults {
		return sampleRecipes(matches), nil
	}

	resp, err := s.provider.Search(ctx, normalize.QueryTerms(dietLabels), normalize.QueryTerms(healthLabels))
	if err != nil {
		return nil, err
	}
	if resp.Hits == nil {
		return nil, ErrNoRecipesFound
	}
	logger.Debug("provider search finished", zap.Int("hits", len(resp.Hits)))

	hits := resp.Hits
	if len(hits) > persistLimit {
		hits = hits[:persistLimit]
	}

	fetched := make([]model.Recipe, 0, len(hits))
	for _, hit := range hits {
		fetched = append(fetched, recipeFromHit(hit))
	}

	if len(fetched) > 0 {
		if err := s.store.InsertMany(ctx, fetched); err != nil {
			return nil, err
		}
	}

	return sampleRecipes(fetched), nil
}

// recipeFromHit maps one provider hit onto the stored recipe shape. Labels
// become Title-Case-with-hyphens so the row matches later label lookups, and
// calories per serving is derived only when the provider supplied calories
// together with a positive yield; otherwise the field stays nil.
func recipeFromHit(hit provider.Hit) model.Recipe {
	src := hit.Recipe

	recipe := model.Recipe{
		ID:              uuid.New(),
		Title:           src.Label,
		Image:           src.Image,
		Source:          src.Source,
		InstructionsURL: src.URL,
		DietLabels:      normalize.Labels(src.DietLabels),
		HealthLabels:    normalize.Labels(src.HealthLabels),
		Ingredients:     src.IngredientLines,
		CuisineType:     src.CuisineType,
		MealType:        src.MealType,
		DishType:        src.DishType,
	}

	if recipe.Source == "" {
		recipe.Source = "Unknown"
	}
	if recipe.InstructionsURL == "" {
		recipe.InstructionsURL = "No URL available"
	}

	if src.Yield != nil {
		servingSize := *src.Yield
		recipe.ServingSize = &servingSize
		if *src.Yield > 0 && src.Calories != nil {
			caloriesPerServing := *src.Calories / *src.Yield
			recipe.CaloriesPerServing = &caloriesPerServing
		}
	}
	if src.TotalTime != nil {
		totalTime := int(*src.TotalTime)
		recipe.TotalTime = &totalTime
	}

	if len(src.TotalNutrients) > 0 {
		nutrients := make(model.NutrientTable, len(src.TotalNutrients))
		for code, nutrient := range src.TotalNutrients {
			nutrients[code] = model.Nutrient{
				Label:    nutrient.Label,
				Quantity: nutrient.Quantity,
				Unit:     nutrient.Unit,
			}
		}
		recipe.TotalNutrients = nutrients
	}

	return recipe
}

// sampleRecipes picks at most maxResults recipes uniformly at random. The
// input is copied before shuffling so callers keep their slice order.
func sampleRecipes(recipes []model.Recipe) []model.Recipe {
	sampled := make([]model.Recipe, len(recipes))
	copy(sampled, recipes)

	rand.Shuffle(len(sampled), func(i, j int) {
		sampled[i], sampled[j] = sampled[j], sampled[i]
	})

	if len(sampled) > maxResults {
		sampled = sampled[:maxResults]
	}
	return sampled
}
