package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mealfolio/backend/internal/logger"
	"github.com/mealfolio/backend/internal/service"
)

type RecipeHandler struct {
	service service.IRecipeService
}

func NewRecipeHandler(recipeService service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{service: recipeService}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
	}
}

// ListRecipes returns up to twelve recipes matching the requested diet and
// health labels. Labels may be repeated, e.g. /recipes?diet=low-carb&health=vegan&health=peanut-free.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	dietLabels := c.QueryArray("diet")
	healthLabels := c.QueryArray("health")

	recipes, err := h.service.FindRecipes(c.Request.Context(), dietLabels, healthLabels)
	if err != nil {
		if errors.Is(err, service.ErrNoRecipesFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No recipes found"})
			return
		}
		logger.Error("Failed to fetch recipes",
			zap.Strings("diet", dietLabels),
			zap.Strings("health", healthLabels),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, recipes)
}
