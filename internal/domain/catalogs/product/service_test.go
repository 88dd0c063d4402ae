package product

import (
	"context"
	"testing"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/id"
	"stockpile/internal/core/types"
)

// memoryRepo is an in-memory Repository for service tests.
type memoryRepo struct {
	byID  map[id.ID]*Product
	bySKU map[string]*Product
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		byID:  make(map[id.ID]*Product),
		bySKU: make(map[string]*Product),
	}
}

func (m *memoryRepo) Create(ctx context.Context, p *Product) error {
	m.byID[p.ID] = p
	m.bySKU[p.SKU] = p
	return nil
}

func (m *memoryRepo) GetByID(ctx context.Context, productID id.ID) (*Product, error) {
	return m.byID[productID], nil
}

func (m *memoryRepo) GetBySKU(ctx context.Context, sku string) (*Product, error) {
	return m.bySKU[sku], nil
}

func (m *memoryRepo) List(ctx context.Context) ([]*Product, error) {
	out := make([]*Product, 0, len(m.byID))
	for _, p := range m.byID {
		out = append(out, p)
	}
	return out, nil
}

func (m *memoryRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.byID)), nil
}

func TestServiceCreate(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	p := New("SKU-1", "Widget", "", types.MustMoney("2.50"), 10)
	if err := svc.Create(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Category != DefaultCategory {
		t.Errorf("expected default category, got %q", got.Category)
	}
}

func TestServiceCreate_DuplicateSKU(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	if err := svc.Create(ctx, New("SKU-1", "First", "", types.Zero(), 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := svc.Create(ctx, New("SKU-1", "Second", "", types.Zero(), 0))
	appErr, ok := apperror.AsAppError(err)
	if !ok || appErr.Code != apperror.CodeDuplicate {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestServiceGetByID_NotFound(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.GetByID(context.Background(), id.New())
	if !apperror.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
