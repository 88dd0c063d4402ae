// Package order_repo provides PostgreSQL persistence for order documents.
package order_repo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockpile/internal/core/apperror"
	"stockpile/internal/domain/orders"
	"stockpile/internal/infrastructure/storage/postgres"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Compile-time check.
var _ orders.Repository = (*Repo)(nil)

// Repo implements orders.Repository backed by PostgreSQL.
// Both order tables are append-only; there are no updates or deletes.
type Repo struct {
	txManager *postgres.TxManager
}

// NewRepo creates a new order repository.
func NewRepo(txManager *postgres.TxManager) *Repo {
	return &Repo{txManager: txManager}
}

func (r *Repo) CreatePurchaseOrder(ctx context.Context, po *orders.PurchaseOrder) error {
	query, args, err := qb.Insert("purchase_orders").
		Columns("id", "number", "supplier_id", "product_id", "warehouse_id", "quantity", "status", "created_by", "created_at").
		Values(po.ID, po.Number, po.SupplierID, po.ProductID, po.WarehouseID, po.Quantity, po.Status, po.CreatedBy, po.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert purchase order: %w", err)
	}

	_, err = r.txManager.GetQuerier(ctx).Exec(ctx, query, args...)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return apperror.NewDuplicate("purchase order", "number", po.Number)
		}
		return apperror.NewStorageFailure(err)
	}
	return nil
}

func (r *Repo) CreateSalesOrder(ctx context.Context, so *orders.SalesOrder) error {
	query, args, err := qb.Insert("sales_orders").
		Columns("id", "number", "product_id", "warehouse_id", "quantity", "customer_name", "status", "created_by", "created_at").
		Values(so.ID, so.Number, so.ProductID, so.WarehouseID, so.Quantity, so.CustomerName, so.Status, so.CreatedBy, so.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert sales order: %w", err)
	}

	_, err = r.txManager.GetQuerier(ctx).Exec(ctx, query, args...)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return apperror.NewDuplicate("sales order", "number", so.Number)
		}
		return apperror.NewStorageFailure(err)
	}
	return nil
}

func (r *Repo) ListPurchaseOrders(ctx context.Context) ([]*orders.PurchaseOrder, error) {
	query, args, err := qb.Select("id", "number", "supplier_id", "product_id", "warehouse_id", "quantity", "status", "created_by", "created_at").
		From("purchase_orders").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list purchase orders: %w", err)
	}

	items := make([]*orders.PurchaseOrder, 0)
	err = pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, query, args...)
	if err != nil {
		return nil, apperror.NewStorageFailure(err)
	}
	return items, nil
}

func (r *Repo) ListSalesOrders(ctx context.Context) ([]*orders.SalesOrder, error) {
	query, args, err := qb.Select("id", "number", "product_id", "warehouse_id", "quantity", "customer_name", "status", "created_by", "created_at").
		From("sales_orders").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list sales orders: %w", err)
	}

	items := make([]*orders.SalesOrder, 0)
	err = pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, query, args...)
	if err != nil {
		return nil, apperror.NewStorageFailure(err)
	}
	return items, nil
}
