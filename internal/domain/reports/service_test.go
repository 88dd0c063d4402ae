package reports

import (
	"context"
	"testing"

	"stockpile/internal/core/id"
)

// memoryRepo implements Repository over fixed data.
type memoryRepo struct {
	totals     []ProductTotal
	categories []CategoryTotal
	records    []StockRecord
	counts     [3]int64
}

func (m *memoryRepo) GetProductTotals(ctx context.Context) ([]ProductTotal, error) {
	return m.totals, nil
}

func (m *memoryRepo) GetCategoryTotals(ctx context.Context) ([]CategoryTotal, error) {
	return m.categories, nil
}

func (m *memoryRepo) GetStockOverview(ctx context.Context) ([]StockRecord, error) {
	return m.records, nil
}

func (m *memoryRepo) GetCatalogCounts(ctx context.Context) (int64, int64, int64, error) {
	return m.counts[0], m.counts[1], m.counts[2], nil
}

// passthroughTx runs the function directly; report reads need no rollback.
type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTx) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func total(sku, name string, reorder, qty int64) ProductTotal {
	return ProductTotal{
		ProductID:     id.New(),
		SKU:           sku,
		Name:          name,
		Category:      "Parts",
		ReorderLevel:  reorder,
		TotalQuantity: qty,
	}
}

func TestListLowStock_StrictlyBelowThreshold(t *testing.T) {
	repo := &memoryRepo{totals: []ProductTotal{
		total("SKU-A", "Below", 10, 9),
		total("SKU-B", "AtThreshold", 10, 10),
		total("SKU-C", "Above", 10, 11),
	}}
	svc := NewService(repo, passthroughTx{})

	items, err := svc.ListLowStock(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("expected exactly 1 low-stock item, got %d", len(items))
	}
	if items[0].SKU != "SKU-A" {
		t.Errorf("expected SKU-A, got %s", items[0].SKU)
	}
	if items[0].AvailableQty != 9 || items[0].ReorderLevel != 10 {
		t.Errorf("unexpected item payload: %+v", items[0])
	}
}

func TestListLowStock_SumsAcrossWarehouses(t *testing.T) {
	// Repository already aggregates per product: 2+2 units against reorder
	// level 5 arrives as one total of 4 and must be reported as low.
	repo := &memoryRepo{totals: []ProductTotal{
		total("SKU-SPLIT", "Split Stock", 5, 4),
	}}
	svc := NewService(repo, passthroughTx{})

	items, err := svc.ListLowStock(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].AvailableQty != 4 {
		t.Fatalf("expected one item with availableQty 4, got %+v", items)
	}
}

func TestListLowStock_ProductWithoutEntriesTotalsZero(t *testing.T) {
	repo := &memoryRepo{totals: []ProductTotal{
		total("SKU-NEW", "Never Stocked", 1, 0),
	}}
	svc := NewService(repo, passthroughTx{})

	items, err := svc.ListLowStock(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].AvailableQty != 0 {
		t.Fatalf("product with no ledger entries must be low at total 0, got %+v", items)
	}
}

func TestListLowStock_EmptyCatalog(t *testing.T) {
	svc := NewService(&memoryRepo{}, passthroughTx{})

	items, err := svc.ListLowStock(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty result, got %d items", len(items))
	}
}

func TestCategoryTotals(t *testing.T) {
	repo := &memoryRepo{categories: []CategoryTotal{
		{Category: "Fasteners", Quantity: 1200},
		{Category: "Uncategorized", Quantity: 450},
	}}
	svc := NewService(repo, passthroughTx{})

	totals, err := svc.CategoryTotals(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if totals["Fasteners"] != 1200 {
		t.Errorf("expected Fasteners=1200, got %d", totals["Fasteners"])
	}
	if totals["Uncategorized"] != 450 {
		t.Errorf("expected Uncategorized=450, got %d", totals["Uncategorized"])
	}
}

func TestStockOverview(t *testing.T) {
	repo := &memoryRepo{records: []StockRecord{
		{ProductSKU: "SKU-A", ProductName: "Widget", WarehouseName: "Main", Quantity: 7},
	}}
	svc := NewService(repo, passthroughTx{})

	records, err := svc.StockOverview(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Quantity != 7 {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestGetDashboard(t *testing.T) {
	repo := &memoryRepo{
		totals: []ProductTotal{
			total("SKU-A", "Low", 10, 2),
			total("SKU-B", "Fine", 10, 50),
		},
		categories: []CategoryTotal{
			{Category: "Parts", Quantity: 52},
		},
		counts: [3]int64{2, 3, 4},
	}
	svc := NewService(repo, passthroughTx{})

	dash, err := svc.GetDashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dash.Products != 2 || dash.Suppliers != 3 || dash.Warehouses != 4 {
		t.Errorf("unexpected counts: %+v", dash)
	}
	if dash.LowStock != 1 {
		t.Errorf("expected 1 low-stock product, got %d", dash.LowStock)
	}
	if len(dash.CategoryTotals) != 1 || dash.CategoryTotals[0].Quantity != 52 {
		t.Errorf("unexpected category totals: %+v", dash.CategoryTotals)
	}
}
