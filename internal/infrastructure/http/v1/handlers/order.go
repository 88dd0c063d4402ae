package handlers

import (
	"github.com/gin-gonic/gin"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/id"
	"stockpile/internal/domain/orders"
	"stockpile/internal/infrastructure/http/v1/dto"
)

// OrderHandler handles HTTP requests for purchase and sales orders.
type OrderHandler struct {
	*BaseHandler
	service *orders.Service
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(base *BaseHandler, service *orders.Service) *OrderHandler {
	return &OrderHandler{BaseHandler: base, service: service}
}

// CreatePurchaseOrder handles POST /purchase-orders
func (h *OrderHandler) CreatePurchaseOrder(c *gin.Context) {
	var req dto.CreatePurchaseOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	supplierID, err := id.Parse(req.SupplierID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid supplierId format"))
		return
	}
	productID, warehouseID, ok := h.parseStockKey(c, req.ProductID, req.WarehouseID)
	if !ok {
		return
	}

	po, err := h.service.SubmitPurchaseOrder(c.Request.Context(), orders.PurchaseOrderRequest{
		SupplierID:  supplierID,
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    req.Quantity,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromPurchaseOrder(po))
}

// ListPurchaseOrders handles GET /purchase-orders
func (h *OrderHandler) ListPurchaseOrders(c *gin.Context) {
	items, err := h.service.ListPurchaseOrders(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	List(h.BaseHandler, c, dto.FromPurchaseOrders(items))
}

// CreateSalesOrder handles POST /sales-orders
func (h *OrderHandler) CreateSalesOrder(c *gin.Context) {
	var req dto.CreateSalesOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	productID, warehouseID, ok := h.parseStockKey(c, req.ProductID, req.WarehouseID)
	if !ok {
		return
	}

	so, err := h.service.SubmitSalesOrder(c.Request.Context(), orders.SalesOrderRequest{
		ProductID:    productID,
		WarehouseID:  warehouseID,
		Quantity:     req.Quantity,
		CustomerName: req.CustomerName,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromSalesOrder(so))
}

// ListSalesOrders handles GET /sales-orders
func (h *OrderHandler) ListSalesOrders(c *gin.Context) {
	items, err := h.service.ListSalesOrders(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	List(h.BaseHandler, c, dto.FromSalesOrders(items))
}

func (h *OrderHandler) parseStockKey(c *gin.Context, productStr, warehouseStr string) (productID, warehouseID id.ID, ok bool) {
	productID, err := id.Parse(productStr)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid productId format"))
		return id.Nil(), id.Nil(), false
	}
	warehouseID, err = id.Parse(warehouseStr)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid warehouseId format"))
		return id.Nil(), id.Nil(), false
	}
	return productID, warehouseID, true
}

// RegisterRoutes registers order routes.
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/purchase-orders", h.CreatePurchaseOrder)
	rg.GET("/purchase-orders", h.ListPurchaseOrders)
	rg.POST("/sales-orders", h.CreateSalesOrder)
	rg.GET("/sales-orders", h.ListSalesOrders)
}
