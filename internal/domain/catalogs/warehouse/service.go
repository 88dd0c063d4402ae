package warehouse

import (
	"context"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/id"
	"stockpile/pkg/logger"
)

// Service provides business operations for the Warehouse catalog.
type Service struct {
	repo Repository
}

// NewService creates a new Warehouse service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and inserts a new warehouse. The code must be unique.
func (s *Service) Create(ctx context.Context, w *Warehouse) error {
	if err := w.Validate(ctx); err != nil {
		return err
	}

	existing, err := s.repo.GetByCode(ctx, w.Code)
	if err != nil {
		return apperror.Wrap(err)
	}
	if existing != nil {
		return apperror.NewDuplicate("warehouse", "code", w.Code)
	}

	if err := s.repo.Create(ctx, w); err != nil {
		return apperror.Wrap(err)
	}

	logger.Info(ctx, "warehouse created", "id", w.ID, "code", w.Code)
	return nil
}

// GetByID retrieves a warehouse, returning NotFound when absent.
func (s *Service) GetByID(ctx context.Context, warehouseID id.ID) (*Warehouse, error) {
	w, err := s.repo.GetByID(ctx, warehouseID)
	if err != nil {
		return nil, apperror.Wrap(err)
	}
	if w == nil {
		return nil, apperror.NewNotFound("warehouse", warehouseID)
	}
	return w, nil
}

// List returns all warehouses ordered by name.
func (s *Service) List(ctx context.Context) ([]*Warehouse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(err)
	}
	return items, nil
}
