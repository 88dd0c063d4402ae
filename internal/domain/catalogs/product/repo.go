package product

import (
	"context"

	"stockpile/internal/core/id"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	// Create inserts a new product. Returns a duplicate error when the SKU
	// is already taken.
	Create(ctx context.Context, p *Product) error

	// GetByID retrieves a product by ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, productID id.ID) (*Product, error)

	// GetBySKU retrieves a product by SKU. Returns (nil, nil) when absent.
	GetBySKU(ctx context.Context, sku string) (*Product, error)

	// List returns all products ordered by name.
	List(ctx context.Context) ([]*Product, error)

	// Count returns the number of products.
	Count(ctx context.Context) (int64, error)
}
