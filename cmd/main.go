package main

import (
	"sheetsync-service/internal/handler"
	mid "sheetsync-service/internal/middleware"
	"sheetsync-service/pkg/config"
	"sheetsync-service/pkg/database"
	"sheetsync-service/pkg/logger"
	"sheetsync-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting sheetsync-service", appConfig.LogConfig()...)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer database.Close()
	log.Info("Database connection established")

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(mid.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(mid.MetricsMiddleware)

	// Ops routes
	e.GET("/", handler.Root)
	e.GET("/ping", handler.Ping)
	e.GET("/db-health", handler.DBHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Sheet push route, guarded by the shared sync key
	e.POST("/sync", handler.Sync, mid.SyncKeyMiddleware(appConfig.Sync.Key))

	// Business read routes
	business := e.Group("/business")
	business.GET("/:id/menu", handler.GetMenu)
	business.GET("/:id/hours", handler.GetHours)
	business.GET("/:id/location", handler.GetLocation)
	business.GET("/:id/status", handler.GetStatus)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
