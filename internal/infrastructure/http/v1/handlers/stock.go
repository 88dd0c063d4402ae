package handlers

import (
	"github.com/gin-gonic/gin"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/id"
	"stockpile/internal/domain/ledger"
	"stockpile/internal/domain/reports"
	"stockpile/internal/infrastructure/http/v1/dto"
)

// StockHandler handles HTTP requests for the stock ledger.
type StockHandler struct {
	*BaseHandler
	ledger  *ledger.Service
	reports *reports.Service
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(base *BaseHandler, ledgerSvc *ledger.Service, reportsSvc *reports.Service) *StockHandler {
	return &StockHandler{
		BaseHandler: base,
		ledger:      ledgerSvc,
		reports:     reportsSvc,
	}
}

// Overview handles GET /stock
// Returns every ledger entry with product and warehouse names.
func (h *StockHandler) Overview(c *gin.Context) {
	records, err := h.reports.StockOverview(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	List(h.BaseHandler, c, dto.FromStockRecords(records))
}

// GetQuantity handles GET /stock/:productId/:warehouseId
// A pair without a ledger entry reads as quantity 0, not 404.
func (h *StockHandler) GetQuantity(c *gin.Context) {
	productID, err := id.Parse(c.Param("productId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid productId format"))
		return
	}
	warehouseID, err := id.Parse(c.Param("warehouseId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid warehouseId format"))
		return
	}

	quantity, err := h.ledger.Quantity(c.Request.Context(), productID, warehouseID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.StockQuantityResponse{
		ProductID:   productID.String(),
		WarehouseID: warehouseID.String(),
		Quantity:    quantity,
	})
}

// GetProductAvailability handles GET /stock/availability/:productId
// Returns the product total summed across all warehouses.
func (h *StockHandler) GetProductAvailability(c *gin.Context) {
	productID, err := id.Parse(c.Param("productId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid productId format"))
		return
	}

	quantity, err := h.ledger.ProductAvailability(c.Request.Context(), productID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{
		"productId": productID.String(),
		"quantity":  quantity,
	})
}

// RegisterRoutes registers stock ledger routes.
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Overview)
	rg.GET("/availability/:productId", h.GetProductAvailability)
	rg.GET("/:productId/:warehouseId", h.GetQuantity)
}
