package dto

import (
	"time"

	"stockpile/internal/domain/orders"
)

// --- Requests ---

// CreatePurchaseOrderRequest for submitting a purchase order.
// Quantity is validated by the order processor, not by binding, so that a
// non-positive value produces INVALID_QUANTITY instead of a generic 400.
type CreatePurchaseOrderRequest struct {
	SupplierID  string `json:"supplierId" binding:"required,uuid"`
	ProductID   string `json:"productId" binding:"required,uuid"`
	WarehouseID string `json:"warehouseId" binding:"required,uuid"`
	Quantity    int64  `json:"quantity"`
}

// CreateSalesOrderRequest for submitting a sales order.
type CreateSalesOrderRequest struct {
	ProductID    string `json:"productId" binding:"required,uuid"`
	WarehouseID  string `json:"warehouseId" binding:"required,uuid"`
	Quantity     int64  `json:"quantity"`
	CustomerName string `json:"customerName"`
}

// --- Responses ---

// PurchaseOrderResponse represents a purchase order in API responses.
type PurchaseOrderResponse struct {
	ID          string    `json:"id"`
	Number      string    `json:"number"`
	SupplierID  string    `json:"supplierId"`
	ProductID   string    `json:"productId"`
	WarehouseID string    `json:"warehouseId"`
	Quantity    int64     `json:"quantity"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"createdBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromPurchaseOrder converts entity to response DTO.
func FromPurchaseOrder(po *orders.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		ID:          po.ID.String(),
		Number:      po.Number,
		SupplierID:  po.SupplierID.String(),
		ProductID:   po.ProductID.String(),
		WarehouseID: po.WarehouseID.String(),
		Quantity:    po.Quantity,
		Status:      po.Status,
		CreatedBy:   po.CreatedBy,
		CreatedAt:   po.CreatedAt,
	}
}

// FromPurchaseOrders converts a slice of entities.
func FromPurchaseOrders(items []*orders.PurchaseOrder) []PurchaseOrderResponse {
	out := make([]PurchaseOrderResponse, len(items))
	for i, po := range items {
		out[i] = FromPurchaseOrder(po)
	}
	return out
}

// SalesOrderResponse represents a sales order in API responses.
type SalesOrderResponse struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	ProductID    string    `json:"productId"`
	WarehouseID  string    `json:"warehouseId"`
	Quantity     int64     `json:"quantity"`
	CustomerName string    `json:"customerName,omitempty"`
	Status       string    `json:"status"`
	CreatedBy    string    `json:"createdBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FromSalesOrder converts entity to response DTO.
func FromSalesOrder(so *orders.SalesOrder) SalesOrderResponse {
	return SalesOrderResponse{
		ID:           so.ID.String(),
		Number:       so.Number,
		ProductID:    so.ProductID.String(),
		WarehouseID:  so.WarehouseID.String(),
		Quantity:     so.Quantity,
		CustomerName: so.CustomerName,
		Status:       so.Status,
		CreatedBy:    so.CreatedBy,
		CreatedAt:    so.CreatedAt,
	}
}

// FromSalesOrders converts a slice of entities.
func FromSalesOrders(items []*orders.SalesOrder) []SalesOrderResponse {
	out := make([]SalesOrderResponse, len(items))
	for i, so := range items {
		out[i] = FromSalesOrder(so)
	}
	return out
}
