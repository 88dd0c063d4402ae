// Package warehouse provides the Warehouse catalog.
// Warehouses represent physical locations for storing goods.
package warehouse

import (
	"context"
	"strings"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/entity"
)

// Warehouse represents a storage location for goods.
type Warehouse struct {
	entity.Base

	// Code is a human-readable unique identifier. Immutable after creation.
	Code string `db:"code" json:"code"`

	// Name is the display name
	Name string `db:"name" json:"name"`

	// Location is the physical address or site description
	Location string `db:"location" json:"location,omitempty"`
}

// New creates a new Warehouse with required fields.
func New(code, name, location string) *Warehouse {
	return &Warehouse{
		Base:     entity.NewBase(),
		Code:     strings.TrimSpace(code),
		Name:     strings.TrimSpace(name),
		Location: strings.TrimSpace(location),
	}
}

// Validate implements entity.Validatable.
func (w *Warehouse) Validate(ctx context.Context) error {
	if w.Code == "" {
		return apperror.NewValidation("code is required").
			WithDetail("field", "code")
	}
	if w.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}
