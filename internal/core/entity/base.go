// Package entity provides base types shared by catalogs and documents.
package entity

import (
	"context"
	"time"

	"stockpile/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Base contains common fields for all persisted entities.
type Base struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`

	// CreatedAt is the creation timestamp (UTC)
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NewBase creates a new Base with generated ID and timestamp.
func NewBase() Base {
	return Base{
		ID:        id.New(),
		CreatedAt: time.Now().UTC(),
	}
}

// Document extends Base with the identity of the caller that recorded it.
// Order documents are immutable once created, so there are no update fields.
type Document struct {
	Base

	// Number is a human-readable document number (e.g. PO-2026-00001)
	Number string `db:"number" json:"number"`

	// CreatedBy is the identity passed in with the request, if any
	CreatedBy string `db:"created_by" json:"createdBy,omitempty"`
}

// NewDocument creates a new Document with generated ID and timestamp.
func NewDocument(createdBy string) Document {
	return Document{
		Base:      NewBase(),
		CreatedBy: createdBy,
	}
}
