package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/53400755Maria/taxi-service/internal/config"
	"github.com/53400755Maria/taxi-service/internal/server/http/handlers"
	"github.com/53400755Maria/taxi-service/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.TaxiFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	driverHandler := handlers.NewDriverHandler(facade)
	pricingHandler := handlers.NewPricingHandler(facade)
	statsHandler := handlers.NewStatsHandler(facade)

	api := engine.Group("/api")
	api.GET("/health", handlers.Health)
	api.GET("/orders", orderHandler.List)
	api.POST("/order", orderHandler.Create)
	api.GET("/order/:id", orderHandler.Get)
	api.PUT("/order/:id", orderHandler.Update)
	api.POST("/order/:id/cancel", orderHandler.Cancel)
	api.GET("/stats", statsHandler.Stats)
	api.GET("/drivers", driverHandler.List)
	api.PUT("/driver/:id/status", driverHandler.SetStatus)
	api.POST("/calculate-price", pricingHandler.Calculate)
	api.POST("/admin/cleanup", statsHandler.Cleanup)

	// The web client is optional; everything outside /api falls through to it.
	if cfg.StaticDir != "" {
		engine.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.StaticDir))))
	}

	return engine
}
