package supplier

import (
	"context"

	"stockpile/internal/core/id"
)

// Repository defines the interface for Supplier persistence.
type Repository interface {
	// Create inserts a new supplier.
	Create(ctx context.Context, s *Supplier) error

	// GetByID retrieves a supplier by ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, supplierID id.ID) (*Supplier, error)

	// List returns all suppliers ordered by name.
	List(ctx context.Context) ([]*Supplier, error)

	// Count returns the number of suppliers.
	Count(ctx context.Context) (int64, error)
}
