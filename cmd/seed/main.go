// Package main provides a CLI tool for initializing the schema and seeding
// the database with demo data.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"stockpile/internal/core/types"
	"stockpile/internal/domain/catalogs/product"
	"stockpile/internal/domain/catalogs/supplier"
	"stockpile/internal/domain/catalogs/warehouse"
	"stockpile/internal/domain/ledger"
	"stockpile/internal/infrastructure/storage/postgres"
	"stockpile/internal/infrastructure/storage/postgres/catalog_repo"
	"stockpile/internal/infrastructure/storage/postgres/ledger_repo"
	"stockpile/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := postgres.ApplySchema(ctx, pool); err != nil {
		log.Fatalw("failed to apply schema", "error", err)
	}
	log.Info("schema applied")

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	log.Info("seeding demo data...")

	txManager := postgres.NewTxManager(pool)

	productRepo := catalog_repo.NewProductRepo(txManager)
	warehouseRepo := catalog_repo.NewWarehouseRepo(txManager)
	supplierRepo := catalog_repo.NewSupplierRepo(txManager)

	productSvc := product.NewService(productRepo)
	warehouseSvc := warehouse.NewService(warehouseRepo)
	supplierSvc := supplier.NewService(supplierRepo)
	ledgerSvc := ledger.NewService(ledger_repo.NewRepo(txManager))

	// Warehouses
	warehouses := []*warehouse.Warehouse{
		warehouse.New("WH-MAIN", "Main Warehouse", "12 Dockside Road"),
		warehouse.New("WH-NORTH", "North Depot", "4 Junction Street"),
	}
	for _, w := range warehouses {
		if err := warehouseSvc.Create(ctx, w); err != nil {
			// Re-running the seed against an existing database is fine
			log.Warnw("skipping warehouse", "code", w.Code, "error", err)
			existing, lookupErr := warehouseRepo.GetByCode(ctx, w.Code)
			if lookupErr != nil || existing == nil {
				return err
			}
			*w = *existing
		}
	}

	// Suppliers
	suppliers := []*supplier.Supplier{
		supplier.New("Acme Components", "Jo Fletcher", "+44 20 7946 0101", "orders@acme-components.example"),
		supplier.New("Nordic Parts AB", "Sven Lund", "+46 8 555 0102", "sales@nordicparts.example"),
	}
	for _, s := range suppliers {
		if err := supplierSvc.Create(ctx, s); err != nil {
			return err
		}
	}

	// Products
	products := []*product.Product{
		product.New("SKU-0001", "Hex Bolt M8", "Fasteners", types.MustMoney("0.12"), 500),
		product.New("SKU-0002", "Bearing 6204", "Bearings", types.MustMoney("3.40"), 100),
		product.New("SKU-0003", "Shipping Box L", "", types.MustMoney("0.95"), 200),
	}
	for _, p := range products {
		if err := productSvc.Create(ctx, p); err != nil {
			log.Warnw("skipping product", "sku", p.SKU, "error", err)
			existing, lookupErr := productRepo.GetBySKU(ctx, p.SKU)
			if lookupErr != nil || existing == nil {
				return err
			}
			*p = *existing
		}
	}

	// Initial stock
	type stockSeed struct {
		product   *product.Product
		warehouse *warehouse.Warehouse
		quantity  int64
	}
	stock := []stockSeed{
		{products[0], warehouses[0], 1200},
		{products[1], warehouses[0], 80},
		{products[2], warehouses[1], 450},
	}
	for _, s := range stock {
		err := txManager.RunInTransaction(ctx, func(ctx context.Context) error {
			return ledgerSvc.Adjust(ctx, s.product.ID, s.warehouse.ID, s.quantity)
		})
		if err != nil {
			return err
		}
	}

	log.Infow("demo data seeded",
		"warehouses", len(warehouses),
		"suppliers", len(suppliers),
		"products", len(products),
	)
	return nil
}
