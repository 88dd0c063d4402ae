// Package reports provides read-only aggregations over the catalog and the
// stock ledger: low-stock classification, category totals, stock overview.
package reports

import (
	"stockpile/internal/core/id"
)

// ProductTotal is the summed ledger quantity for one product across all
// warehouses. Products without any ledger entry appear with TotalQuantity 0.
type ProductTotal struct {
	ProductID     id.ID  `db:"product_id" json:"productId"`
	SKU           string `db:"sku" json:"sku"`
	Name          string `db:"name" json:"name"`
	Category      string `db:"category" json:"category"`
	ReorderLevel  int64  `db:"reorder_level" json:"reorderLevel"`
	TotalQuantity int64  `db:"total_quantity" json:"totalQuantity"`
}

// LowStockItem is a product whose total quantity is strictly below its
// reorder level.
type LowStockItem struct {
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	ReorderLevel int64  `json:"reorderLevel"`
	AvailableQty int64  `json:"availableQty"`
}

// CategoryTotal is the summed quantity for one product category.
type CategoryTotal struct {
	Category string `db:"category" json:"category"`
	Quantity int64  `db:"quantity" json:"quantity"`
}

// StockRecord is a typed projection of one ledger entry joined with its
// product and warehouse, decoupling storage shape from presentation.
type StockRecord struct {
	ProductSKU    string `db:"product_sku" json:"productSku"`
	ProductName   string `db:"product_name" json:"productName"`
	WarehouseName string `db:"warehouse_name" json:"warehouseName"`
	Quantity      int64  `db:"quantity" json:"quantity"`
}

// Dashboard aggregates the counters shown on the landing view.
type Dashboard struct {
	Products       int64           `json:"products"`
	Suppliers      int64           `json:"suppliers"`
	Warehouses     int64           `json:"warehouses"`
	LowStock       int64           `json:"lowStock"`
	CategoryTotals []CategoryTotal `json:"categoryTotals"`
}
