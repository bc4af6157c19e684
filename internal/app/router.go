package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"tripcost/internal/handler"
	"tripcost/internal/metrics"
	"tripcost/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	CostHandler    *handler.CostHandler
	RateHandler    *handler.RateHandler
	RedisClient    *redis.Client // nil disables idempotency keys
	NewRelicApp    *newrelic.Application
	MetricsEnabled bool
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	if deps.RedisClient != nil {
		router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if deps.MetricsEnabled {
		metrics.Init()
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Cost estimate routes.
		costs := v1.Group("/costs")
		{
			costs.POST("/core", deps.CostHandler.EstimateCore)
			costs.POST("/itemized", deps.CostHandler.EstimateItemized)
			costs.POST("/compare", deps.CostHandler.Compare)
		}

		// Border routes.
		v1.POST("/borders/check", deps.CostHandler.CheckBorder)

		// Rate table routes.
		rates := v1.Group("/rates")
		{
			rates.GET("", deps.RateHandler.GetAll)
			rates.GET("/:region", deps.RateHandler.GetRegion)
			rates.PUT("/:region", deps.RateHandler.PutRegion)
		}
	}

	return router
}
