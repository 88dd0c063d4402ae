package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/types"
)

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, DefaultCategory, NormalizeCategory(""))
	assert.Equal(t, DefaultCategory, NormalizeCategory("   "))
	assert.Equal(t, "Fasteners", NormalizeCategory("Fasteners"))
	assert.Equal(t, "Fasteners", NormalizeCategory("  Fasteners  "))
}

func TestNew_AppliesDefaultCategory(t *testing.T) {
	p := New("SKU-1", "Widget", "", types.MustMoney("1.50"), 5)

	assert.Equal(t, DefaultCategory, p.Category)
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		product *Product
		wantErr bool
		field   string
	}{
		{
			name:    "valid",
			product: New("SKU-1", "Widget", "Widgets", types.MustMoney("1.00"), 10),
		},
		{
			name:    "missing sku",
			product: New("", "Widget", "", types.Zero(), 0),
			wantErr: true,
			field:   "sku",
		},
		{
			name:    "missing name",
			product: New("SKU-1", "", "", types.Zero(), 0),
			wantErr: true,
			field:   "name",
		},
		{
			name:    "negative price",
			product: New("SKU-1", "Widget", "", types.MustMoney("-0.01"), 0),
			wantErr: true,
			field:   "unitPrice",
		},
		{
			name:    "negative reorder level",
			product: New("SKU-1", "Widget", "", types.Zero(), -1),
			wantErr: true,
			field:   "reorderLevel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate(ctx)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			assert.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.Equal(t, tt.field, appErr.Details["field"])
		})
	}
}

func TestValidate_ZeroReorderLevelIsValid(t *testing.T) {
	p := New("SKU-1", "Widget", "", types.Zero(), 0)
	assert.NoError(t, p.Validate(context.Background()))
}
