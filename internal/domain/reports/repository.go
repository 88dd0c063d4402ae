package reports

import (
	"context"
)

// Repository defines the read queries backing the reports.
// Implementations aggregate with direct keyed sum queries; an empty result
// always reads as quantity 0, never as an error.
type Repository interface {
	// GetProductTotals returns every product with its summed ledger quantity
	// across warehouses, ordered by name.
	GetProductTotals(ctx context.Context) ([]ProductTotal, error)

	// GetCategoryTotals returns summed quantity per category, blank
	// categories mapped to the default, ordered by category.
	GetCategoryTotals(ctx context.Context) ([]CategoryTotal, error)

	// GetStockOverview returns all ledger entries joined with product and
	// warehouse names.
	GetStockOverview(ctx context.Context) ([]StockRecord, error)

	// GetCatalogCounts returns the number of products, suppliers and
	// warehouses.
	GetCatalogCounts(ctx context.Context) (products, suppliers, warehouses int64, err error)
}
