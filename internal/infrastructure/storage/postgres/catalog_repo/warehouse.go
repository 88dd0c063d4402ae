package catalog_repo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/id"
	"stockpile/internal/domain/catalogs/warehouse"
	"stockpile/internal/infrastructure/storage/postgres"
)

// Compile-time check.
var _ warehouse.Repository = (*WarehouseRepo)(nil)

// WarehouseRepo implements warehouse.Repository backed by PostgreSQL.
type WarehouseRepo struct {
	txManager *postgres.TxManager
}

// NewWarehouseRepo creates a new warehouse repository.
func NewWarehouseRepo(txManager *postgres.TxManager) *WarehouseRepo {
	return &WarehouseRepo{txManager: txManager}
}

func (r *WarehouseRepo) Create(ctx context.Context, w *warehouse.Warehouse) error {
	query, args, err := qb.Insert("warehouses").
		Columns("id", "code", "name", "location", "created_at").
		Values(w.ID, w.Code, w.Name, w.Location, w.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert warehouse: %w", err)
	}

	_, err = r.txManager.GetQuerier(ctx).Exec(ctx, query, args...)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return apperror.NewDuplicate("warehouse", "code", w.Code)
		}
		return apperror.NewStorageFailure(err)
	}
	return nil
}

func (r *WarehouseRepo) GetByID(ctx context.Context, warehouseID id.ID) (*warehouse.Warehouse, error) {
	query, args, err := qb.Select("id", "code", "name", "location", "created_at").
		From("warehouses").
		Where(sq.Eq{"id": warehouseID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select warehouse: %w", err)
	}

	var w warehouse.Warehouse
	err = pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &w, query, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewStorageFailure(err)
	}
	return &w, nil
}

func (r *WarehouseRepo) GetByCode(ctx context.Context, code string) (*warehouse.Warehouse, error) {
	query, args, err := qb.Select("id", "code", "name", "location", "created_at").
		From("warehouses").
		Where(sq.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select warehouse by code: %w", err)
	}

	var w warehouse.Warehouse
	err = pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &w, query, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewStorageFailure(err)
	}
	return &w, nil
}

func (r *WarehouseRepo) List(ctx context.Context) ([]*warehouse.Warehouse, error) {
	query, args, err := qb.Select("id", "code", "name", "location", "created_at").
		From("warehouses").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list warehouses: %w", err)
	}

	items := make([]*warehouse.Warehouse, 0)
	err = pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, query, args...)
	if err != nil {
		return nil, apperror.NewStorageFailure(err)
	}
	return items, nil
}

func (r *WarehouseRepo) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.txManager, "warehouses")
}
