package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/coursehound/course-api/api/health"
	"github.com/coursehound/course-api/api/home"
	"github.com/coursehound/course-api/api/search"
	"github.com/coursehound/course-api/api/types"
	"github.com/coursehound/course-api/api/version"
	_ "github.com/coursehound/course-api/docs/swagger"
	"github.com/coursehound/course-api/internal/metrics"
	"github.com/coursehound/course-api/pkg/config"
)

// RegisterRoutes registers all routes: the search page, the JSON API,
// and the operational endpoints.
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Public routes (no rate limiting)
	home.RegisterRoutes(engine, deps)
	health.RegisterRoutes(engine, deps)

	if config.GetBool("monitoring.enabled") {
		engine.GET(metricsPath(), gin.WrapH(metrics.Handler()))
	}

	// Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")
	version.RegisterRoutes(v1, deps)

	// Search carries dedicated rate limiting since every hit fans out to
	// the recommend backend (5 req/s, burst of 10).
	searchGroup := v1.Group("/search")
	if config.GetBool("rate_limiting.enabled") {
		searchGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
	}
	search.RegisterRoutes(searchGroup, deps)

	return nil
}

func metricsPath() string {
	if path := config.GetString("monitoring.metrics_path"); path != "" {
		return path
	}
	return "/metrics"
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
