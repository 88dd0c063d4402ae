// Package supplier provides the Supplier catalog.
// Suppliers are the counterparties purchase orders are placed with.
package supplier

import (
	"context"
	"regexp"
	"strings"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/entity"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Supplier represents a goods supplier.
type Supplier struct {
	entity.Base

	// Name is the display name (required)
	Name string `db:"name" json:"name"`

	// ContactPerson is the primary contact (optional)
	ContactPerson string `db:"contact_person" json:"contactPerson,omitempty"`

	// Phone is the contact phone number (optional)
	Phone string `db:"phone" json:"phone,omitempty"`

	// Email is the contact email (optional, format-checked when present)
	Email string `db:"email" json:"email,omitempty"`
}

// New creates a new Supplier with required fields.
func New(name, contactPerson, phone, email string) *Supplier {
	return &Supplier{
		Base:          entity.NewBase(),
		Name:          strings.TrimSpace(name),
		ContactPerson: strings.TrimSpace(contactPerson),
		Phone:         strings.TrimSpace(phone),
		Email:         strings.TrimSpace(email),
	}
}

// Validate implements entity.Validatable.
func (s *Supplier) Validate(ctx context.Context) error {
	if s.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if s.Email != "" && !emailRe.MatchString(s.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email").
			WithDetail("value", s.Email)
	}
	return nil
}
