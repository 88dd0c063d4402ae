package dto

import (
	"stockpile/internal/domain/reports"
)

// LowStockItemResponse is one product below its reorder level.
type LowStockItemResponse struct {
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	ReorderLevel int64  `json:"reorderLevel"`
	AvailableQty int64  `json:"availableQty"`
}

// FromLowStockItems converts report items to response DTOs.
func FromLowStockItems(items []reports.LowStockItem) []LowStockItemResponse {
	out := make([]LowStockItemResponse, len(items))
	for i, item := range items {
		out[i] = LowStockItemResponse{
			SKU:          item.SKU,
			Name:         item.Name,
			ReorderLevel: item.ReorderLevel,
			AvailableQty: item.AvailableQty,
		}
	}
	return out
}

// CategoryTotalsResponse maps category name to total quantity.
type CategoryTotalsResponse struct {
	Totals map[string]int64 `json:"totals"`
}

// DashboardResponse aggregates the landing view counters.
type DashboardResponse struct {
	Products       int64            `json:"products"`
	Suppliers      int64            `json:"suppliers"`
	Warehouses     int64            `json:"warehouses"`
	LowStock       int64            `json:"lowStock"`
	CategoryTotals map[string]int64 `json:"categoryTotals"`
}

// FromDashboard converts entity to response DTO.
func FromDashboard(d *reports.Dashboard) DashboardResponse {
	totals := make(map[string]int64, len(d.CategoryTotals))
	for _, t := range d.CategoryTotals {
		totals[t.Category] += t.Quantity
	}
	return DashboardResponse{
		Products:       d.Products,
		Suppliers:      d.Suppliers,
		Warehouses:     d.Warehouses,
		LowStock:       d.LowStock,
		CategoryTotals: totals,
	}
}
