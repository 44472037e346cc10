package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mealfolio/backend/config"
	"github.com/mealfolio/backend/internal/api"
	"github.com/mealfolio/backend/internal/database"
	"github.com/mealfolio/backend/internal/logger"
	"github.com/mealfolio/backend/internal/middleware"
	"github.com/mealfolio/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New creates a new server instance
func New(cfg *config.Config, db *gorm.DB, recipeService service.IRecipeService, documentService service.IDocumentService) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	api.RegisterRoutes(router, recipeService, documentService)

	s := &Server{
		router: router,
		db:     db,
	}

	// Readiness probe, healthy only while the database answers
	router.GET("/ready", s.readiness)

	s.http = &http.Server{
		Addr:         cfg.ServerHost + ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

func (s *Server) readiness(c *gin.Context) {
	if err := database.HealthCheck(c.Request.Context(), s.db); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Start begins serving requests and blocks until the listener stops.
func (s *Server) Start() error {
	logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
