package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mealfolio/backend/internal/logger"
	"github.com/mealfolio/backend/internal/model"
	"github.com/mealfolio/backend/internal/render"
	"github.com/mealfolio/backend/internal/service"
)

type DocumentHandler struct {
	service service.IDocumentService
}

func NewDocumentHandler(documentService service.IDocumentService) *DocumentHandler {
	return &DocumentHandler{service: documentService}
}

func (h *DocumentHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("/print", h.PrintRecipes)
	}
}

// PrintRecipes renders the posted recipes into a single PDF, one page per
// recipe, and returns it as a download. When archiving is configured the
// response carries a link to the stored copy in the X-Document-URL header.
func (h *DocumentHandler) PrintRecipes(c *gin.Context) {
	var recipes []model.Recipe
	if err := c.ShouldBindJSON(&recipes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.service.PrintRecipes(c.Request.Context(), recipes)
	if err != nil {
		if errors.Is(err, render.ErrEmptyBatch) || errors.Is(err, render.ErrInvalidRecipe) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to print recipes",
			zap.Int("recipes", len(recipes)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to print recipes"})
		return
	}

	if doc.ArchiveURL != "" {
		c.Header("X-Document-URL", doc.ArchiveURL)
	}
	c.Header("Content-Disposition", `attachment; filename="recipes.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc.Data)
}
