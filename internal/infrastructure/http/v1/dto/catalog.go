package dto

import (
	"time"

	"stockpile/internal/core/types"
	"stockpile/internal/domain/catalogs/product"
	"stockpile/internal/domain/catalogs/supplier"
	"stockpile/internal/domain/catalogs/warehouse"
)

// --- Product ---

// CreateProductRequest for creating products.
type CreateProductRequest struct {
	SKU          string  `json:"sku" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category"`
	UnitPrice    float64 `json:"unitPrice" binding:"min=0"`
	ReorderLevel int64   `json:"reorderLevel" binding:"min=0"`
}

// ToEntity converts the request into a domain product.
func (r CreateProductRequest) ToEntity() *product.Product {
	return product.New(r.SKU, r.Name, r.Category, types.NewMoney(r.UnitPrice), r.ReorderLevel)
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID           string    `json:"id"`
	SKU          string    `json:"sku"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	UnitPrice    string    `json:"unitPrice"`
	ReorderLevel int64     `json:"reorderLevel"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FromProduct converts entity to response DTO.
func FromProduct(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID.String(),
		SKU:          p.SKU,
		Name:         p.Name,
		Category:     p.Category,
		UnitPrice:    p.UnitPrice.String(),
		ReorderLevel: p.ReorderLevel,
		CreatedAt:    p.CreatedAt,
	}
}

// FromProducts converts a slice of entities.
func FromProducts(items []*product.Product) []ProductResponse {
	out := make([]ProductResponse, len(items))
	for i, p := range items {
		out[i] = FromProduct(p)
	}
	return out
}

// --- Warehouse ---

// CreateWarehouseRequest for creating warehouses.
type CreateWarehouseRequest struct {
	Code     string `json:"code" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

// ToEntity converts the request into a domain warehouse.
func (r CreateWarehouseRequest) ToEntity() *warehouse.Warehouse {
	return warehouse.New(r.Code, r.Name, r.Location)
}

// WarehouseResponse represents a warehouse in API responses.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromWarehouse converts entity to response DTO.
func FromWarehouse(w *warehouse.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:        w.ID.String(),
		Code:      w.Code,
		Name:      w.Name,
		Location:  w.Location,
		CreatedAt: w.CreatedAt,
	}
}

// FromWarehouses converts a slice of entities.
func FromWarehouses(items []*warehouse.Warehouse) []WarehouseResponse {
	out := make([]WarehouseResponse, len(items))
	for i, w := range items {
		out[i] = FromWarehouse(w)
	}
	return out
}

// --- Supplier ---

// CreateSupplierRequest for creating suppliers.
type CreateSupplierRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
}

// ToEntity converts the request into a domain supplier.
func (r CreateSupplierRequest) ToEntity() *supplier.Supplier {
	return supplier.New(r.Name, r.ContactPerson, r.Phone, r.Email)
}

// SupplierResponse represents a supplier in API responses.
type SupplierResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contactPerson,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FromSupplier converts entity to response DTO.
func FromSupplier(s *supplier.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.ID.String(),
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		CreatedAt:     s.CreatedAt,
	}
}

// FromSuppliers converts a slice of entities.
func FromSuppliers(items []*supplier.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, len(items))
	for i, s := range items {
		out[i] = FromSupplier(s)
	}
	return out
}
