package main

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mealfolio/backend/config"
	"github.com/mealfolio/backend/internal/database"
	"github.com/mealfolio/backend/internal/logger"
	"github.com/mealfolio/backend/internal/model"
	"github.com/mealfolio/backend/internal/store"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// sampleRecipes are a small starter set so a fresh install can answer lookups
// before the first provider fetch.
func sampleRecipes() []model.Recipe {
	return []model.Recipe{
		{
			ID:                 uuid.New(),
			Title:              "Zucchini Noodle Carbonara",
			Image:              "https://img.mealfolio.dev/zucchini-noodle-carbonara.jpg",
			Source:             "Mealfolio Kitchen",
			InstructionsURL:    "https://mealfolio.dev/recipes/zucchini-noodle-carbonara",
			DietLabels:         model.StringArray{"Low-Carb"},
			HealthLabels:       model.StringArray{"Gluten-Free", "Peanut-Free"},
			Ingredients:        model.StringArray{"4 zucchini", "2 eggs", "100g pancetta", "50g parmesan"},
			ServingSize:        floatPtr(2),
			CaloriesPerServing: floatPtr(412.5),
			TotalTime:          intPtr(25),
			CuisineType:        model.StringArray{"italian"},
			MealType:           model.StringArray{"lunch/dinner"},
			DishType:           model.StringArray{"main course"},
			TotalNutrients: model.NutrientTable{
				"ENERC_KCAL": {Label: "Energy", Quantity: 825, Unit: "kcal"},
				"PROCNT":     {Label: "Protein", Quantity: 48, Unit: "g"},
			},
		},
		{
			ID:                 uuid.New(),
			Title:              "Chickpea Buddha Bowl",
			Image:              "https://img.mealfolio.dev/chickpea-buddha-bowl.jpg",
			Source:             "Mealfolio Kitchen",
			InstructionsURL:    "https://mealfolio.dev/recipes/chickpea-buddha-bowl",
			DietLabels:         model.StringArray{"High-Fiber", "Balanced"},
			HealthLabels:       model.StringArray{"Vegan", "Vegetarian", "Dairy-Free"},
			Ingredients:        model.StringArray{"1 can chickpeas", "1 cup quinoa", "2 cups kale", "1 avocado", "2 tbsp tahini"},
			ServingSize:        floatPtr(2),
			CaloriesPerServing: floatPtr(520),
			TotalTime:          intPtr(35),
			CuisineType:        model.StringArray{"mediterranean"},
			MealType:           model.StringArray{"lunch/dinner"},
			DishType:           model.StringArray{"main course"},
			TotalNutrients: model.NutrientTable{
				"ENERC_KCAL": {Label: "Energy", Quantity: 1040, Unit: "kcal"},
				"FIBTG":      {Label: "Fiber", Quantity: 28, Unit: "g"},
			},
		},
		{
			ID:                 uuid.New(),
			Title:              "Keto Salmon with Asparagus",
			Image:              "https://img.mealfolio.dev/keto-salmon-asparagus.jpg",
			Source:             "Mealfolio Kitchen",
			InstructionsURL:    "https://mealfolio.dev/recipes/keto-salmon-asparagus",
			DietLabels:         model.StringArray{"Keto-Friendly", "Low-Carb"},
			HealthLabels:       model.StringArray{"Pescatarian", "Gluten-Free"},
			Ingredients:        model.StringArray{"2 salmon fillets", "1 bunch asparagus", "3 tbsp butter", "1 lemon"},
			ServingSize:        floatPtr(2),
			CaloriesPerServing: floatPtr(610),
			TotalTime:          intPtr(20),
			CuisineType:        model.StringArray{"nordic"},
			MealType:           model.StringArray{"lunch/dinner"},
			DishType:           model.StringArray{"main course"},
			TotalNutrients: model.NutrientTable{
				"ENERC_KCAL": {Label: "Energy", Quantity: 1220, Unit: "kcal"},
				"FAT":        {Label: "Fat", Quantity: 86, Unit: "g"},
			},
		},
	}
}

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

	ctx := context.Background()
	recipeStore := store.NewRecipeStore(db)

	count, err := recipeStore.Count(ctx)
	if err != nil {
		logger.Fatal("Failed to count recipes", zap.Error(err))
	}
	if count > 0 {
		logger.Info("Recipes already present, skipping seed", zap.Int64("count", count))
		return
	}

	recipes := sampleRecipes()
	if err := recipeStore.InsertMany(ctx, recipes); err != nil {
		logger.Fatal("Failed to seed recipes", zap.Error(err))
	}
	logger.Info("Seeded recipes", zap.Int("count", len(recipes)))
}
