package orders

import (
	"context"

	"stockpile/internal/core/id"
	"stockpile/internal/domain/catalogs/product"
	"stockpile/internal/domain/catalogs/supplier"
	"stockpile/internal/domain/catalogs/warehouse"
)

// Repository defines persistence for the append-only order collections.
type Repository interface {
	// CreatePurchaseOrder inserts a purchase order record.
	CreatePurchaseOrder(ctx context.Context, po *PurchaseOrder) error

	// CreateSalesOrder inserts a sales order record.
	CreateSalesOrder(ctx context.Context, so *SalesOrder) error

	// ListPurchaseOrders returns purchase orders, newest first.
	ListPurchaseOrders(ctx context.Context) ([]*PurchaseOrder, error)

	// ListSalesOrders returns sales orders, newest first.
	ListSalesOrders(ctx context.Context) ([]*SalesOrder, error)
}

// CatalogStore resolves referenced identifiers against the catalog records.
// A nil result means the id does not resolve; the order processor only needs
// existence, never mutation access.
type CatalogStore interface {
	FindProductByID(ctx context.Context, productID id.ID) (*product.Product, error)
	FindWarehouseByID(ctx context.Context, warehouseID id.ID) (*warehouse.Warehouse, error)
	FindSupplierByID(ctx context.Context, supplierID id.ID) (*supplier.Supplier, error)
}

// NumberGenerator allocates human-readable document numbers.
type NumberGenerator interface {
	Next(ctx context.Context, prefix string) (string, error)
}

type catalogStore struct {
	products   product.Repository
	warehouses warehouse.Repository
	suppliers  supplier.Repository
}

// NewCatalogStore builds a CatalogStore over the catalog repositories.
func NewCatalogStore(products product.Repository, warehouses warehouse.Repository, suppliers supplier.Repository) CatalogStore {
	return &catalogStore{
		products:   products,
		warehouses: warehouses,
		suppliers:  suppliers,
	}
}

func (c *catalogStore) FindProductByID(ctx context.Context, productID id.ID) (*product.Product, error) {
	return c.products.GetByID(ctx, productID)
}

func (c *catalogStore) FindWarehouseByID(ctx context.Context, warehouseID id.ID) (*warehouse.Warehouse, error) {
	return c.warehouses.GetByID(ctx, warehouseID)
}

func (c *catalogStore) FindSupplierByID(ctx context.Context, supplierID id.ID) (*supplier.Supplier, error) {
	return c.suppliers.GetByID(ctx, supplierID)
}
