package http

import (
	"github.com/gin-gonic/gin"
	"github.com/mrdwine/catalog-engine/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	maxUpload := cfg.Server.MaxUploadMB << 20
	router.MaxMultipartMemory = maxUpload

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
	v1.Use(UploadLimitMiddleware(maxUpload))
	{
		catalog := v1.Group("/catalog")
		{
			catalog.POST("/sync", handler.SyncCatalog)
		}

		feeds := v1.Group("/feeds")
		{
			feeds.POST("/update", handler.UpdateFeed)
			feeds.POST("/create", handler.CreateFeed)
		}
	}

	return router
}
