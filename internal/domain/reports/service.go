package reports

import (
	"context"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/tx"
)

// Service generates reports. All operations are pure reads; each runs in a
// read-only transaction so one report reflects a consistent snapshot even
// while orders are being processed.
type Service struct {
	repo      Repository
	txManager tx.ReadOnlyManager
}

// NewService creates a new reports service.
func NewService(repo Repository, txManager tx.ReadOnlyManager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// ListLowStock returns products whose summed quantity across all warehouses
// is strictly below their reorder level. A product equal to its threshold is
// not low-stock; a product with no ledger entries totals 0.
func (s *Service) ListLowStock(ctx context.Context) ([]LowStockItem, error) {
	var totals []ProductTotal

	err := s.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		totals, err = s.repo.GetProductTotals(ctx)
		return err
	})
	if err != nil {
		return nil, apperror.Wrap(err)
	}

	items := make([]LowStockItem, 0)
	for _, t := range totals {
		if t.TotalQuantity < t.ReorderLevel {
			items = append(items, LowStockItem{
				SKU:          t.SKU,
				Name:         t.Name,
				ReorderLevel: t.ReorderLevel,
				AvailableQty: t.TotalQuantity,
			})
		}
	}
	return items, nil
}

// CategoryTotals returns summed quantity per product category.
func (s *Service) CategoryTotals(ctx context.Context) (map[string]int64, error) {
	var rows []CategoryTotal

	err := s.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		rows, err = s.repo.GetCategoryTotals(ctx)
		return err
	})
	if err != nil {
		return nil, apperror.Wrap(err)
	}

	totals := make(map[string]int64, len(rows))
	for _, r := range rows {
		totals[r.Category] += r.Quantity
	}
	return totals, nil
}

// StockOverview returns every ledger entry with product and warehouse names.
func (s *Service) StockOverview(ctx context.Context) ([]StockRecord, error) {
	var records []StockRecord

	err := s.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		records, err = s.repo.GetStockOverview(ctx)
		return err
	})
	if err != nil {
		return nil, apperror.Wrap(err)
	}
	return records, nil
}

// GetDashboard returns catalog counters, the low-stock count and category
// totals in one consistent snapshot.
func (s *Service) GetDashboard(ctx context.Context) (*Dashboard, error) {
	var dash Dashboard

	err := s.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		products, suppliers, warehouses, err := s.repo.GetCatalogCounts(ctx)
		if err != nil {
			return err
		}
		dash.Products = products
		dash.Suppliers = suppliers
		dash.Warehouses = warehouses

		totals, err := s.repo.GetProductTotals(ctx)
		if err != nil {
			return err
		}
		for _, t := range totals {
			if t.TotalQuantity < t.ReorderLevel {
				dash.LowStock++
			}
		}

		dash.CategoryTotals, err = s.repo.GetCategoryTotals(ctx)
		return err
	})
	if err != nil {
		return nil, apperror.Wrap(err)
	}
	return &dash, nil
}
