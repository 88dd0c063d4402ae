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
	"stockpile/internal/domain/catalogs/supplier"
	"stockpile/internal/infrastructure/storage/postgres"
)

// Compile-time check.
var _ supplier.Repository = (*SupplierRepo)(nil)

// SupplierRepo implements supplier.Repository backed by PostgreSQL.
type SupplierRepo struct {
	txManager *postgres.TxManager
}

// NewSupplierRepo creates a new supplier repository.
func NewSupplierRepo(txManager *postgres.TxManager) *SupplierRepo {
	return &SupplierRepo{txManager: txManager}
}

func (r *SupplierRepo) Create(ctx context.Context, s *supplier.Supplier) error {
	query, args, err := qb.Insert("suppliers").
		Columns("id", "name", "contact_person", "phone", "email", "created_at").
		Values(s.ID, s.Name, s.ContactPerson, s.Phone, s.Email, s.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert supplier: %w", err)
	}

	_, err = r.txManager.GetQuerier(ctx).Exec(ctx, query, args...)
	if err != nil {
		return apperror.NewStorageFailure(err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, supplierID id.ID) (*supplier.Supplier, error) {
	query, args, err := qb.Select("id", "name", "contact_person", "phone", "email", "created_at").
		From("suppliers").
		Where(sq.Eq{"id": supplierID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select supplier: %w", err)
	}

	var s supplier.Supplier
	err = pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &s, query, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewStorageFailure(err)
	}
	return &s, nil
}

func (r *SupplierRepo) List(ctx context.Context) ([]*supplier.Supplier, error) {
	query, args, err := qb.Select("id", "name", "contact_person", "phone", "email", "created_at").
		From("suppliers").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list suppliers: %w", err)
	}

	items := make([]*supplier.Supplier, 0)
	err = pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, query, args...)
	if err != nil {
		return nil, apperror.NewStorageFailure(err)
	}
	return items, nil
}

func (r *SupplierRepo) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.txManager, "suppliers")
}
