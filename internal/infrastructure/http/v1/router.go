// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"stockpile/internal/domain/catalogs/product"
	"stockpile/internal/domain/catalogs/supplier"
	"stockpile/internal/domain/catalogs/warehouse"
	"stockpile/internal/domain/ledger"
	"stockpile/internal/domain/orders"
	"stockpile/internal/domain/reports"
	"stockpile/internal/infrastructure/http/v1/handlers"
	"stockpile/internal/infrastructure/http/v1/middleware"
	"stockpile/internal/infrastructure/storage/postgres"
	"stockpile/internal/infrastructure/storage/postgres/catalog_repo"
	"stockpile/internal/infrastructure/storage/postgres/ledger_repo"
	"stockpile/internal/infrastructure/storage/postgres/order_repo"
	"stockpile/internal/infrastructure/storage/postgres/report_repo"
	"stockpile/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// TxManager manages database transactions
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// Numerator generates document numbers
	Numerator orders.NumberGenerator
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
	healthHandler.RegisterRoutes(router.Group("/health"))

	// Repositories
	productRepo := catalog_repo.NewProductRepo(cfg.TxManager)
	warehouseRepo := catalog_repo.NewWarehouseRepo(cfg.TxManager)
	supplierRepo := catalog_repo.NewSupplierRepo(cfg.TxManager)
	ledgerRepo := ledger_repo.NewRepo(cfg.TxManager)
	orderRepo := order_repo.NewRepo(cfg.TxManager)
	reportRepo := report_repo.NewRepo(cfg.TxManager)

	// Services
	productSvc := product.NewService(productRepo)
	warehouseSvc := warehouse.NewService(warehouseRepo)
	supplierSvc := supplier.NewService(supplierRepo)
	ledgerSvc := ledger.NewService(ledgerRepo)
	catalogStore := orders.NewCatalogStore(productRepo, warehouseRepo, supplierRepo)
	orderSvc := orders.NewService(orderRepo, ledgerSvc, catalogStore, cfg.Numerator, cfg.TxManager)
	reportSvc := reports.NewService(reportRepo, cfg.TxManager)

	// API v1
	baseHandler := handlers.NewBaseHandler()
	api := router.Group("/api/v1")
	api.Use(middleware.UserContext())
	{
		handlers.NewProductHandler(baseHandler, productSvc).RegisterRoutes(api.Group("/products"))
		handlers.NewWarehouseHandler(baseHandler, warehouseSvc).RegisterRoutes(api.Group("/warehouses"))
		handlers.NewSupplierHandler(baseHandler, supplierSvc).RegisterRoutes(api.Group("/suppliers"))
		handlers.NewStockHandler(baseHandler, ledgerSvc, reportSvc).RegisterRoutes(api.Group("/stock"))
		handlers.NewOrderHandler(baseHandler, orderSvc).RegisterRoutes(api)
		handlers.NewReportHandler(baseHandler, reportSvc).RegisterRoutes(api.Group("/reports"))
	}

	return router
}
