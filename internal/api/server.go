// Package api exposes the reconciliation engine over HTTP for the
// expense-form UI. Handlers stay thin: parse, call the engine or a
// client, record history, respond.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/platewise/reconcile-backend/internal/adapters/places"
	"github.com/platewise/reconcile-backend/internal/api/dto"
	"github.com/platewise/reconcile-backend/internal/domain/reconcile"
	"github.com/platewise/reconcile-backend/internal/domain/similarity"
	"github.com/platewise/reconcile-backend/internal/infrastructure/storage"
)

// RestaurantLookup is the slice of the places client the API needs.
type RestaurantLookup interface {
	Lookup(ctx context.Context, restaurantID string) (*places.Restaurant, error)
}

// ExtractionFetcher is the slice of the extraction client the API needs.
type ExtractionFetcher interface {
	Fetch(ctx context.Context, receiptID string) (reconcile.ExtractedRecord, error)
}

// Server holds the handler dependencies.
type Server struct {
	engine     *reconcile.Engine
	tz         *reconcile.TimezoneResolver
	scorer     similarity.Scorer
	engCfg     reconcile.Config
	repo       storage.Repository
	places     RestaurantLookup
	extraction ExtractionFetcher
	logger     *slog.Logger
}

// NewServer builds a Server around a default-zone engine. Requests may
// override the zone per call; the scorer and tolerances are fixed for
// the process.
func NewServer(tz *reconcile.TimezoneResolver, scorer similarity.Scorer, engCfg reconcile.Config, repo storage.Repository, lookup RestaurantLookup, fetcher ExtractionFetcher, logger *slog.Logger) *Server {
	if tz == nil {
		tz = reconcile.UTC()
	}
	return &Server{
		engine:     reconcile.NewEngine(tz, scorer, engCfg),
		tz:         tz,
		scorer:     scorer,
		engCfg:     engCfg,
		repo:       repo,
		places:     lookup,
		extraction: fetcher,
		logger:     logger,
	}
}

// Router builds the gin engine with CORS and routes registered.
func (s *Server) Router(allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/health"},
	}))

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", s.health)

	api := router.Group("/api")
	{
		api.POST("/reconcile", s.reconcile)
		api.POST("/reconcile/receipts/:id", s.reconcileReceipt)
		api.POST("/reconcile/apply", s.applySuggestion)
		api.GET("/restaurants/:id", s.getRestaurant)
		api.GET("/runs", s.listRuns)
		api.GET("/runs/:id", s.getRun)
		api.GET("/stats", s.getStats)
	}

	return router
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
