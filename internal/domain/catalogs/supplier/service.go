package supplier

import (
	"context"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/id"
	"stockpile/pkg/logger"
)

// Service provides business operations for the Supplier catalog.
type Service struct {
	repo Repository
}

// NewService creates a new Supplier service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and inserts a new supplier.
func (s *Service) Create(ctx context.Context, sup *Supplier) error {
	if err := sup.Validate(ctx); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, sup); err != nil {
		return apperror.Wrap(err)
	}

	logger.Info(ctx, "supplier created", "id", sup.ID, "name", sup.Name)
	return nil
}

// GetByID retrieves a supplier, returning NotFound when absent.
func (s *Service) GetByID(ctx context.Context, supplierID id.ID) (*Supplier, error) {
	sup, err := s.repo.GetByID(ctx, supplierID)
	if err != nil {
		return nil, apperror.Wrap(err)
	}
	if sup == nil {
		return nil, apperror.NewNotFound("supplier", supplierID)
	}
	return sup, nil
}

// List returns all suppliers ordered by name.
func (s *Service) List(ctx context.Context) ([]*Supplier, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(err)
	}
	return items, nil
}
