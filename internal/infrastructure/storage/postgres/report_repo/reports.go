// Package report_repo provides the PostgreSQL read queries behind the reports.
package report_repo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockpile/internal/core/apperror"
	"stockpile/internal/domain/catalogs/product"
	"stockpile/internal/domain/reports"
	"stockpile/internal/infrastructure/storage/postgres"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Compile-time check.
var _ reports.Repository = (*Repo)(nil)

// Repo implements reports.Repository backed by PostgreSQL.
// Products without ledger entries must still appear with total 0, hence the
// LEFT JOIN + COALESCE shape of every aggregation.
type Repo struct {
	txManager *postgres.TxManager
}

// NewRepo creates a new report repository.
func NewRepo(txManager *postgres.TxManager) *Repo {
	return &Repo{txManager: txManager}
}

func (r *Repo) GetProductTotals(ctx context.Context) ([]reports.ProductTotal, error) {
	query, args, err := qb.Select(
		"p.id AS product_id",
		"p.sku",
		"p.name",
		fmt.Sprintf("COALESCE(NULLIF(p.category, ''), '%s') AS category", product.DefaultCategory),
		"p.reorder_level",
		"COALESCE(SUM(s.quantity), 0) AS total_quantity",
	).
		From("products p").
		LeftJoin("stock_entries s ON s.product_id = p.id").
		GroupBy("p.id", "p.sku", "p.name", "p.category", "p.reorder_level").
		OrderBy("p.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build product totals: %w", err)
	}

	totals := make([]reports.ProductTotal, 0)
	err = pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &totals, query, args...)
	if err != nil {
		return nil, apperror.NewStorageFailure(err)
	}
	return totals, nil
}

func (r *Repo) GetCategoryTotals(ctx context.Context) ([]reports.CategoryTotal, error) {
	query, args, err := qb.Select(
		fmt.Sprintf("COALESCE(NULLIF(p.category, ''), '%s') AS category", product.DefaultCategory),
		"COALESCE(SUM(s.quantity), 0) AS quantity",
	).
		From("products p").
		LeftJoin("stock_entries s ON s.product_id = p.id").
		GroupBy("1").
		OrderBy("1").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build category totals: %w", err)
	}

	totals := make([]reports.CategoryTotal, 0)
	err = pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &totals, query, args...)
	if err != nil {
		return nil, apperror.NewStorageFailure(err)
	}
	return totals, nil
}

func (r *Repo) GetStockOverview(ctx context.Context) ([]reports.StockRecord, error) {
	query, args, err := qb.Select(
		"p.sku AS product_sku",
		"p.name AS product_name",
		"w.name AS warehouse_name",
		"s.quantity",
	).
		From("stock_entries s").
		Join("products p ON p.id = s.product_id").
		Join("warehouses w ON w.id = s.warehouse_id").
		OrderBy("p.name", "w.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stock overview: %w", err)
	}

	records := make([]reports.StockRecord, 0)
	err = pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &records, query, args...)
	if err != nil {
		return nil, apperror.NewStorageFailure(err)
	}
	return records, nil
}

func (r *Repo) GetCatalogCounts(ctx context.Context) (products, suppliers, warehouses int64, err error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM suppliers),
			(SELECT COUNT(*) FROM warehouses)`

	err = r.txManager.GetQuerier(ctx).QueryRow(ctx, query).Scan(&products, &suppliers, &warehouses)
	if err != nil {
		return 0, 0, 0, apperror.NewStorageFailure(err)
	}
	return products, suppliers, warehouses, nil
}
