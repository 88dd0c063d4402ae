package dto

import (
	"time"

	"stockpile/internal/domain/ledger"
	"stockpile/internal/domain/reports"
)

// StockEntryResponse represents one ledger entry in API responses.
type StockEntryResponse struct {
	ProductID   string    `json:"productId"`
	WarehouseID string    `json:"warehouseId"`
	Quantity    int64     `json:"quantity"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromStockEntry converts entity to response DTO.
func FromStockEntry(e ledger.Entry) StockEntryResponse {
	return StockEntryResponse{
		ProductID:   e.ProductID.String(),
		WarehouseID: e.WarehouseID.String(),
		Quantity:    e.Quantity,
		UpdatedAt:   e.UpdatedAt,
	}
}

// StockQuantityResponse is the answer to a single (product, warehouse) query.
// A pair without a ledger entry reads as quantity 0.
type StockQuantityResponse struct {
	ProductID   string `json:"productId"`
	WarehouseID string `json:"warehouseId"`
	Quantity    int64  `json:"quantity"`
}

// StockRecordResponse is one row of the stock overview.
type StockRecordResponse struct {
	ProductSKU    string `json:"productSku"`
	ProductName   string `json:"productName"`
	WarehouseName string `json:"warehouseName"`
	Quantity      int64  `json:"quantity"`
}

// FromStockRecords converts report records to response DTOs.
func FromStockRecords(items []reports.StockRecord) []StockRecordResponse {
	out := make([]StockRecordResponse, len(items))
	for i, r := range items {
		out[i] = StockRecordResponse{
			ProductSKU:    r.ProductSKU,
			ProductName:   r.ProductName,
			WarehouseName: r.WarehouseName,
			Quantity:      r.Quantity,
		}
	}
	return out
}
