package warehouse

import (
	"context"

	"stockpile/internal/core/id"
)

// Repository defines the interface for Warehouse persistence.
type Repository interface {
	// Create inserts a new warehouse. Returns a duplicate error when the
	// code is already taken.
	Create(ctx context.Context, w *Warehouse) error

	// GetByID retrieves a warehouse by ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, warehouseID id.ID) (*Warehouse, error)

	// GetByCode retrieves a warehouse by code. Returns (nil, nil) when absent.
	GetByCode(ctx context.Context, code string) (*Warehouse, error)

	// List returns all warehouses ordered by name.
	List(ctx context.Context) ([]*Warehouse, error)

	// Count returns the number of warehouses.
	Count(ctx context.Context) (int64, error)
}
