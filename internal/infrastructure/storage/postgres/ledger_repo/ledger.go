// Package ledger_repo provides PostgreSQL persistence for the stock ledger.
package ledger_repo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/id"
	"stockpile/internal/domain/ledger"
	"stockpile/internal/infrastructure/storage/postgres"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Compile-time check.
var _ ledger.Repository = (*Repo)(nil)

// Repo implements ledger.Repository backed by PostgreSQL.
// Rows live in stock_entries, keyed by (product_id, warehouse_id), with a
// CHECK (quantity >= 0) constraint backing the non-negativity invariant.
type Repo struct {
	txManager *postgres.TxManager
}

// NewRepo creates a new ledger repository.
func NewRepo(txManager *postgres.TxManager) *Repo {
	return &Repo{txManager: txManager}
}

func (r *Repo) GetQuantity(ctx context.Context, productID, warehouseID id.ID) (int64, error) {
	return r.getQuantity(ctx, productID, warehouseID, false)
}

func (r *Repo) GetQuantityForUpdate(ctx context.Context, productID, warehouseID id.ID) (int64, error) {
	return r.getQuantity(ctx, productID, warehouseID, true)
}

func (r *Repo) getQuantity(ctx context.Context, productID, warehouseID id.ID, forUpdate bool) (int64, error) {
	builder := qb.Select("quantity").
		From("stock_entries").
		Where(sq.Eq{"product_id": productID, "warehouse_id": warehouseID})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build select quantity: %w", err)
	}

	var quantity int64
	err = r.txManager.GetQuerier(ctx).QueryRow(ctx, query, args...).Scan(&quantity)
	if err != nil {
		// Missing entry reads as zero stock
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, apperror.NewStorageFailure(err)
	}
	return quantity, nil
}

func (r *Repo) ApplyDelta(ctx context.Context, productID, warehouseID id.ID, delta int64) error {
	query, args, err := qb.Insert("stock_entries").
		Columns("product_id", "warehouse_id", "quantity", "updated_at").
		Values(productID, warehouseID, delta, sq.Expr("NOW()")).
		Suffix(`ON CONFLICT (product_id, warehouse_id) DO UPDATE
			SET quantity = stock_entries.quantity + EXCLUDED.quantity,
			    updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build apply delta: %w", err)
	}

	_, err = r.txManager.GetQuerier(ctx).Exec(ctx, query, args...)
	if err != nil {
		// The CHECK constraint fires only if a decrement slipped past the
		// locked availability check; report it as a shortage, not a 5xx.
		if postgres.IsCheckViolation(err) {
			return apperror.NewInsufficientStock(productID.String(), -delta, 0).WithCause(err)
		}
		return apperror.NewStorageFailure(err)
	}
	return nil
}

func (r *Repo) GetByProduct(ctx context.Context, productID id.ID) ([]ledger.Entry, error) {
	query, args, err := qb.Select("product_id", "warehouse_id", "quantity", "updated_at").
		From("stock_entries").
		Where(sq.Eq{"product_id": productID}).
		OrderBy("warehouse_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select entries: %w", err)
	}

	entries := make([]ledger.Entry, 0)
	err = pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &entries, query, args...)
	if err != nil {
		return nil, apperror.NewStorageFailure(err)
	}
	return entries, nil
}
