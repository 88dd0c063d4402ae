// Package product provides the Product catalog.
// Products are the items whose stock is tracked per warehouse.
package product

import (
	"context"
	"strings"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/entity"
	"stockpile/internal/core/types"
)

// DefaultCategory is assigned when no category is provided.
const DefaultCategory = "Uncategorized"

// Product represents a stocked item.
type Product struct {
	entity.Base

	// SKU is the unique stock keeping unit. Immutable after creation.
	SKU string `db:"sku" json:"sku"`

	// Name is the display name
	Name string `db:"name" json:"name"`

	// Category groups products for dashboard aggregation
	Category string `db:"category" json:"category"`

	// UnitPrice is the selling price per unit
	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`

	// ReorderLevel is the threshold below which total stock is considered low
	ReorderLevel int64 `db:"reorder_level" json:"reorderLevel"`
}

// New creates a Product with required fields, normalizing the category.
func New(sku, name, category string, unitPrice types.Money, reorderLevel int64) *Product {
	return &Product{
		Base:         entity.NewBase(),
		SKU:          strings.TrimSpace(sku),
		Name:         strings.TrimSpace(name),
		Category:     NormalizeCategory(category),
		UnitPrice:    unitPrice,
		ReorderLevel: reorderLevel,
	}
}

// NormalizeCategory maps a blank category to DefaultCategory.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return DefaultCategory
	}
	return category
}

// Validate implements entity.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	if p.SKU == "" {
		return apperror.NewValidation("sku is required").
			WithDetail("field", "sku")
	}
	if p.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if p.UnitPrice.IsNegative() {
		return apperror.NewValidation("unit price must not be negative").
			WithDetail("field", "unitPrice").
			WithDetail("value", p.UnitPrice.String())
	}
	if p.ReorderLevel < 0 {
		return apperror.NewValidation("reorder level must not be negative").
			WithDetail("field", "reorderLevel").
			WithDetail("value", p.ReorderLevel)
	}
	return nil
}
