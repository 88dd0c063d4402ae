package product

import (
	"context"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/id"
	"stockpile/pkg/logger"
)

// Service provides business operations for the Product catalog.
type Service struct {
	repo Repository
}

// NewService creates a new Product service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and inserts a new product.
// The SKU must be unique; category defaults to DefaultCategory when blank.
func (s *Service) Create(ctx context.Context, p *Product) error {
	p.Category = NormalizeCategory(p.Category)

	if err := p.Validate(ctx); err != nil {
		return err
	}

	existing, err := s.repo.GetBySKU(ctx, p.SKU)
	if err != nil {
		return apperror.Wrap(err)
	}
	if existing != nil {
		return apperror.NewDuplicate("product", "sku", p.SKU)
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return apperror.Wrap(err)
	}

	logger.Info(ctx, "product created", "id", p.ID, "sku", p.SKU)
	return nil
}

// GetByID retrieves a product, returning NotFound when absent.
func (s *Service) GetByID(ctx context.Context, productID id.ID) (*Product, error) {
	p, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, apperror.Wrap(err)
	}
	if p == nil {
		return nil, apperror.NewNotFound("product", productID)
	}
	return p, nil
}

// List returns all products ordered by name.
func (s *Service) List(ctx context.Context) ([]*Product, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(err)
	}
	return items, nil
}
