package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealfolio/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Mealfolio API is running",
		"version": "v1.0.0",
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, recipeService service.IRecipeService, documentService service.IDocumentService) {
	// Health check endpoint
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	recipeHandler := NewRecipeHandler(recipeService)
	documentHandler := NewDocumentHandler(documentService)

	v1 := router.Group("/api/v1")
	recipeHandler.RegisterRoutes(v1)
	documentHandler.RegisterRoutes(v1)
}
