// Package catalog_repo provides PostgreSQL persistence for the catalogs.
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
	"stockpile/internal/domain/catalogs/product"
	"stockpile/internal/infrastructure/storage/postgres"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Compile-time check.
var _ product.Repository = (*ProductRepo)(nil)

// ProductRepo implements product.Repository backed by PostgreSQL.
type ProductRepo struct {
	txManager *postgres.TxManager
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txManager *postgres.TxManager) *ProductRepo {
	return &ProductRepo{txManager: txManager}
}

func (r *ProductRepo) Create(ctx context.Context, p *product.Product) error {
	query, args, err := qb.Insert("products").
		Columns("id", "sku", "name", "category", "unit_price", "reorder_level", "created_at").
		Values(p.ID, p.SKU, p.Name, p.Category, p.UnitPrice, p.ReorderLevel, p.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert product: %w", err)
	}

	_, err = r.txManager.GetQuerier(ctx).Exec(ctx, query, args...)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return apperror.NewDuplicate("product", "sku", p.SKU)
		}
		return apperror.NewStorageFailure(err)
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, productID id.ID) (*product.Product, error) {
	query, args, err := qb.Select("id", "sku", "name", "category", "unit_price", "reorder_level", "created_at").
		From("products").
		Where(sq.Eq{"id": productID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select product: %w", err)
	}

	var p product.Product
	err = pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &p, query, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewStorageFailure(err)
	}
	return &p, nil
}

func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*product.Product, error) {
	query, args, err := qb.Select("id", "sku", "name", "category", "unit_price", "reorder_level", "created_at").
		From("products").
		Where(sq.Eq{"sku": sku}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select product by sku: %w", err)
	}

	var p product.Product
	err = pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &p, query, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewStorageFailure(err)
	}
	return &p, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]*product.Product, error) {
	query, args, err := qb.Select("id", "sku", "name", "category", "unit_price", "reorder_level", "created_at").
		From("products").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list products: %w", err)
	}

	items := make([]*product.Product, 0)
	err = pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, query, args...)
	if err != nil {
		return nil, apperror.NewStorageFailure(err)
	}
	return items, nil
}

func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.txManager, "products")
}

// countRows is shared by the catalog repositories.
func countRows(ctx context.Context, txManager *postgres.TxManager, table string) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count %s: %w", table, err)
	}

	var count int64
	err = txManager.GetQuerier(ctx).QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, apperror.NewStorageFailure(err)
	}
	return count, nil
}
