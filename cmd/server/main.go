package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"tripcost/internal/app"
	"tripcost/internal/config"
	"tripcost/internal/handler"
	internalRedis "tripcost/internal/redis"
	"tripcost/internal/repository"
	"tripcost/internal/repository/postgres"
	"tripcost/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// The rate table store is optional; without it only built-in rates are served.
	var db *sql.DB
	if cfg.Costing.RateStoreEnabled {
		db, err = app.NewDatabase(ctx, cfg.Database, nrApp)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()
		log.Println("Connected to PostgreSQL")

		if err := postgres.EnsureSchema(ctx, db); err != nil {
			log.Fatalf("failed to prepare rate table store: %v", err)
		}
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = app.NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		log.Println("Connected to Redis")
	}

	// Wire dependencies.
	server := wireServer(db, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s (default region %s)", cfg.Server.Port, cfg.Costing.DefaultRegion)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	if nrApp != nil {
		nrApp.Shutdown(5 * time.Second)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
// db and redisClient may be nil.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Interfaces stay nil when a backend is disabled.
	var rateRepo repository.RateTableRepository
	if db != nil {
		rateRepo = postgres.NewRateTableRepository(db)
	}

	var rateCache internalRedis.RateCacheInterface
	if redisClient != nil {
		rateCache = internalRedis.NewCacheStore(redisClient, cfg.Costing.RateCacheTTL)
	}

	// Initialize services.
	rateService := service.NewRateService(rateRepo, rateCache, cfg.Costing.DefaultRegion)
	estimateService := service.NewEstimateService(rateService)

	// Initialize handlers.
	costHandler := handler.NewCostHandler(estimateService)
	rateHandler := handler.NewRateHandler(rateService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		CostHandler:    costHandler,
		RateHandler:    rateHandler,
		RedisClient:    redisClient,
		NewRelicApp:    nrApp,
		MetricsEnabled: cfg.Metrics.Enabled,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
