package handlers

import (
	"github.com/gin-gonic/gin"

	"stockpile/internal/domain/reports"
	"stockpile/internal/infrastructure/http/v1/dto"
)

// ReportHandler handles HTTP requests for reports.
type ReportHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportHandler creates a new report handler.
func NewReportHandler(base *BaseHandler, service *reports.Service) *ReportHandler {
	return &ReportHandler{BaseHandler: base, service: service}
}

// LowStock handles GET /reports/low-stock
// A product is low-stock when its total across warehouses is strictly below
// its reorder level.
func (h *ReportHandler) LowStock(c *gin.Context) {
	items, err := h.service.ListLowStock(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	List(h.BaseHandler, c, dto.FromLowStockItems(items))
}

// CategoryTotals handles GET /reports/category-totals
func (h *ReportHandler) CategoryTotals(c *gin.Context) {
	totals, err := h.service.CategoryTotals(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.CategoryTotalsResponse{Totals: totals})
}

// Dashboard handles GET /reports/dashboard
func (h *ReportHandler) Dashboard(c *gin.Context) {
	dash, err := h.service.GetDashboard(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromDashboard(dash))
}

// RegisterRoutes registers report routes.
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/low-stock", h.LowStock)
	rg.GET("/category-totals", h.CategoryTotals)
	rg.GET("/dashboard", h.Dashboard)
}
