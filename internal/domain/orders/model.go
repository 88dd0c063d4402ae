// Package orders provides the order processor: purchase orders credit the
// stock ledger, sales orders debit it when enough stock is available.
package orders

import (
	"strings"

	"stockpile/internal/core/entity"
	"stockpile/internal/core/id"
)

// Order statuses. There is no further lifecycle: purchase orders are
// recorded as already received, sales orders as already dispatched.
const (
	StatusReceived   = "RECEIVED"
	StatusDispatched = "DISPATCHED"
)

// PurchaseOrder records inbound goods from a supplier into a warehouse.
// Immutable once created; creation is paired atomically with a ledger credit.
type PurchaseOrder struct {
	entity.Document

	SupplierID  id.ID  `db:"supplier_id" json:"supplierId"`
	ProductID   id.ID  `db:"product_id" json:"productId"`
	WarehouseID id.ID  `db:"warehouse_id" json:"warehouseId"`
	Quantity    int64  `db:"quantity" json:"quantity"`
	Status      string `db:"status" json:"status"`
}

// NewPurchaseOrder creates a purchase order in status RECEIVED.
func NewPurchaseOrder(createdBy string, supplierID, productID, warehouseID id.ID, quantity int64) *PurchaseOrder {
	return &PurchaseOrder{
		Document:    entity.NewDocument(createdBy),
		SupplierID:  supplierID,
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    quantity,
		Status:      StatusReceived,
	}
}

// SalesOrder records outbound goods from a warehouse to a customer.
// Immutable once created; creation is paired atomically with a ledger debit.
type SalesOrder struct {
	entity.Document

	ProductID    id.ID  `db:"product_id" json:"productId"`
	WarehouseID  id.ID  `db:"warehouse_id" json:"warehouseId"`
	Quantity     int64  `db:"quantity" json:"quantity"`
	CustomerName string `db:"customer_name" json:"customerName"`
	Status       string `db:"status" json:"status"`
}

// NewSalesOrder creates a sales order in status DISPATCHED.
func NewSalesOrder(createdBy string, productID, warehouseID id.ID, quantity int64, customerName string) *SalesOrder {
	return &SalesOrder{
		Document:     entity.NewDocument(createdBy),
		ProductID:    productID,
		WarehouseID:  warehouseID,
		Quantity:     quantity,
		CustomerName: strings.TrimSpace(customerName),
		Status:       StatusDispatched,
	}
}

// PurchaseOrderRequest is the validated input for SubmitPurchaseOrder.
type PurchaseOrderRequest struct {
	SupplierID  id.ID
	ProductID   id.ID
	WarehouseID id.ID
	Quantity    int64
}

// SalesOrderRequest is the validated input for SubmitSalesOrder.
type SalesOrderRequest struct {
	ProductID    id.ID
	WarehouseID  id.ID
	Quantity     int64
	CustomerName string
}
