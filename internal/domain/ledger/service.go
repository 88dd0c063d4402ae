package ledger

import (
	"context"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/id"
)

// Service provides business operations for the stock ledger.
// Transactions are managed by the caller: Adjust with a negative delta must
// run inside a transaction so the availability check and the decrement are
// one atomic unit.
type Service struct {
	repo Repository
}

// NewService creates a new stock ledger service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Quantity returns the current quantity for a (product, warehouse) pair.
// Absence of an entry is not an error and reads as 0.
func (s *Service) Quantity(ctx context.Context, productID, warehouseID id.ID) (int64, error) {
	qty, err := s.repo.GetQuantity(ctx, productID, warehouseID)
	if err != nil {
		return 0, apperror.Wrap(err)
	}
	return qty, nil
}

// Adjust applies quantity += delta for the given key.
//
// A positive delta is an unconditional upsert increment. A negative delta
// takes a row lock, verifies availability, and fails with InsufficientStock
// when the result would go negative, leaving the ledger unchanged. The lock
// guarantees two concurrent decrements never both pass the check.
func (s *Service) Adjust(ctx context.Context, productID, warehouseID id.ID, delta int64) error {
	if delta == 0 {
		return nil
	}

	if delta < 0 {
		available, err := s.repo.GetQuantityForUpdate(ctx, productID, warehouseID)
		if err != nil {
			return apperror.Wrap(err)
		}
		if available+delta < 0 {
			return apperror.NewInsufficientStock(productID.String(), -delta, available)
		}
	}

	if err := s.repo.ApplyDelta(ctx, productID, warehouseID, delta); err != nil {
		return apperror.Wrap(err)
	}
	return nil
}

// ProductAvailability returns the total quantity for a product summed across
// all warehouses that have an entry for it.
func (s *Service) ProductAvailability(ctx context.Context, productID id.ID) (int64, error) {
	entries, err := s.repo.GetByProduct(ctx, productID)
	if err != nil {
		return 0, apperror.Wrap(err)
	}

	var total int64
	for _, e := range entries {
		total += e.Quantity
	}
	return total, nil
}
