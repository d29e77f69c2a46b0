// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"postavka/internal/domain/catalogs/product"
	"postavka/internal/domain/catalogs/supplier"
	"postavka/internal/domain/deliveries"
	"postavka/internal/domain/pricing"
	"postavka/internal/domain/reports"
	"postavka/internal/infrastructure/http/v1/handlers"
	"postavka/internal/infrastructure/http/v1/middleware"
	"postavka/internal/infrastructure/storage/postgres"
	"postavka/internal/infrastructure/storage/postgres/catalog_repo"
	"postavka/internal/infrastructure/storage/postgres/delivery_repo"
	"postavka/internal/infrastructure/storage/postgres/price_repo"
	"postavka/internal/infrastructure/storage/postgres/report_repo"
	"postavka/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// TxManager coordinates transactions for all repositories
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		registerCatalogRoutes(v1, cfg)
		registerDeliveryRoutes(v1, cfg)
		registerReportRoutes(v1, cfg)
	}

	return router
}

// registerCatalogRoutes registers supplier, product and price endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	// --- SUPPLIERS ---
	{
		repo := catalog_repo.NewSupplierRepo(cfg.TxManager)
		service := supplier.NewService(repo, cfg.TxManager)
		handler := handlers.NewSupplierHandler(baseHandler, service)
		RegisterCatalogRoutes(rg.Group("/suppliers"), handler)
	}

	// --- PRODUCTS ---
	{
		repo := catalog_repo.NewProductRepo(cfg.TxManager)
		service := product.NewService(repo, cfg.TxManager)
		handler := handlers.NewProductHandler(baseHandler, service)
		RegisterCatalogRoutes(rg.Group("/products"), handler)
	}

	// --- SUPPLIER PRODUCT PRICES ---
	{
		repo := price_repo.NewPriceRepo(cfg.TxManager)
		service := pricing.NewService(repo, cfg.TxManager)
		handler := handlers.NewPriceHandler(baseHandler, service)
		RegisterCatalogRoutes(rg.Group("/supplier-product-prices"), handler)
	}
}

// registerDeliveryRoutes registers delivery document endpoints.
func registerDeliveryRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	priceRepo := price_repo.NewPriceRepo(cfg.TxManager)
	resolver := pricing.NewResolver(priceRepo)

	repo := delivery_repo.NewDeliveryRepo(cfg.TxManager)
	service := deliveries.NewService(repo, resolver, cfg.TxManager)
	handler := handlers.NewDeliveryHandler(baseHandler, service)

	group := rg.Group("/deliveries")
	group.GET("", handler.List)
	group.POST("", handler.Create)
	group.GET("/:id", handler.Get)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
}

// registerReportRoutes registers report endpoints.
func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	reportRepo := report_repo.NewReportRepo(cfg.TxManager)
	reportService := reports.NewService(reportRepo)
	reportHandler := handlers.NewReportsHandler(baseHandler, reportService)

	rg.GET("/reports", reportHandler.GetDeliveryCost)
}
