// Package ledger provides the stock ledger: one quantity counter per
// (product, warehouse) pair, mutated only through Adjust.
package ledger

import (
	"context"
	"time"

	"stockpile/internal/core/id"
)

// Entry is the quantity record for one (product, warehouse) pair.
// Invariant: Quantity >= 0. A missing entry is equivalent to quantity 0.
type Entry struct {
	ProductID   id.ID     `db:"product_id" json:"productId"`
	WarehouseID id.ID     `db:"warehouse_id" json:"warehouseId"`
	Quantity    int64     `db:"quantity" json:"quantity"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// Repository defines operations on the persisted ledger entries.
type Repository interface {
	// GetQuantity returns the current quantity, 0 when no entry exists.
	GetQuantity(ctx context.Context, productID, warehouseID id.ID) (int64, error)

	// GetQuantityForUpdate returns the current quantity with a row lock,
	// 0 when no entry exists. Must be called within a transaction; the lock
	// serializes concurrent adjustments on the same key.
	GetQuantityForUpdate(ctx context.Context, productID, warehouseID id.ID) (int64, error)

	// ApplyDelta atomically applies quantity += delta, creating the entry
	// when absent. The storage layer enforces the non-negativity invariant
	// as a backstop; callers check availability under lock first.
	ApplyDelta(ctx context.Context, productID, warehouseID id.ID, delta int64) error

	// GetByProduct returns all entries for a product across warehouses.
	GetByProduct(ctx context.Context, productID id.ID) ([]Entry, error)
}
