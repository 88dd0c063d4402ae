package orders

import (
	"context"

	"stockpile/internal/core/apperror"
	appctx "stockpile/internal/core/context"
	"stockpile/internal/core/id"
	"stockpile/internal/core/tx"
	"stockpile/internal/domain/ledger"
	"stockpile/pkg/logger"
)

// Service validates and applies purchase and sales orders.
//
// Each accepted order is paired with exactly one ledger mutation; the record
// write and the mutation commit in a single transaction, so a rejection or a
// storage failure leaves both the ledger and the order tables untouched.
type Service struct {
	repo      Repository
	ledger    *ledger.Service
	catalog   CatalogStore
	numbers   NumberGenerator
	txManager tx.Manager
}

// NewService creates a new order processor.
func NewService(repo Repository, ledgerSvc *ledger.Service, catalog CatalogStore, numbers NumberGenerator, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		ledger:    ledgerSvc,
		catalog:   catalog,
		numbers:   numbers,
		txManager: txManager,
	}
}

// SubmitPurchaseOrder validates and applies an inbound order.
// The ledger credit cannot fail on availability; the credit and the order
// record commit together.
func (s *Service) SubmitPurchaseOrder(ctx context.Context, req PurchaseOrderRequest) (*PurchaseOrder, error) {
	if req.Quantity <= 0 {
		return nil, apperror.NewInvalidQuantity(req.Quantity)
	}

	if err := s.resolveSupplier(ctx, req); err != nil {
		return nil, err
	}
	if err := s.resolveProductAndWarehouse(ctx, req.ProductID, req.WarehouseID); err != nil {
		return nil, err
	}

	po := NewPurchaseOrder(appctx.GetUserID(ctx), req.SupplierID, req.ProductID, req.WarehouseID, req.Quantity)

	number, err := s.numbers.Next(ctx, "PO")
	if err != nil {
		return nil, apperror.Wrap(err)
	}
	po.Number = number

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.ledger.Adjust(ctx, req.ProductID, req.WarehouseID, req.Quantity); err != nil {
			return err
		}
		if err := s.repo.CreatePurchaseOrder(ctx, po); err != nil {
			return apperror.Wrap(err)
		}
		return nil
	})
	if err != nil {
		return nil, apperror.Wrap(err)
	}

	logger.Info(ctx, "purchase order received",
		"number", po.Number,
		"product_id", po.ProductID,
		"warehouse_id", po.WarehouseID,
		"quantity", po.Quantity,
	)
	return po, nil
}

// SubmitSalesOrder validates and applies an outbound order.
// The availability check and the debit are one atomic unit under a row lock,
// so concurrent sales orders on the same key can never oversell.
func (s *Service) SubmitSalesOrder(ctx context.Context, req SalesOrderRequest) (*SalesOrder, error) {
	if req.Quantity <= 0 {
		return nil, apperror.NewInvalidQuantity(req.Quantity)
	}

	if err := s.resolveProductAndWarehouse(ctx, req.ProductID, req.WarehouseID); err != nil {
		return nil, err
	}

	so := NewSalesOrder(appctx.GetUserID(ctx), req.ProductID, req.WarehouseID, req.Quantity, req.CustomerName)

	number, err := s.numbers.Next(ctx, "SO")
	if err != nil {
		return nil, apperror.Wrap(err)
	}
	so.Number = number

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.ledger.Adjust(ctx, req.ProductID, req.WarehouseID, -req.Quantity); err != nil {
			return err
		}
		if err := s.repo.CreateSalesOrder(ctx, so); err != nil {
			return apperror.Wrap(err)
		}
		return nil
	})
	if err != nil {
		return nil, apperror.Wrap(err)
	}

	logger.Info(ctx, "sales order dispatched",
		"number", so.Number,
		"product_id", so.ProductID,
		"warehouse_id", so.WarehouseID,
		"quantity", so.Quantity,
	)
	return so, nil
}

// ListPurchaseOrders returns purchase orders, newest first.
func (s *Service) ListPurchaseOrders(ctx context.Context) ([]*PurchaseOrder, error) {
	items, err := s.repo.ListPurchaseOrders(ctx)
	if err != nil {
		return nil, apperror.Wrap(err)
	}
	return items, nil
}

// ListSalesOrders returns sales orders, newest first.
func (s *Service) ListSalesOrders(ctx context.Context) ([]*SalesOrder, error) {
	items, err := s.repo.ListSalesOrders(ctx)
	if err != nil {
		return nil, apperror.Wrap(err)
	}
	return items, nil
}

func (s *Service) resolveSupplier(ctx context.Context, req PurchaseOrderRequest) error {
	sup, err := s.catalog.FindSupplierByID(ctx, req.SupplierID)
	if err != nil {
		return apperror.Wrap(err)
	}
	if sup == nil {
		return apperror.NewUnknownReference("supplier", req.SupplierID)
	}
	return nil
}

func (s *Service) resolveProductAndWarehouse(ctx context.Context, productID, warehouseID id.ID) error {
	p, err := s.catalog.FindProductByID(ctx, productID)
	if err != nil {
		return apperror.Wrap(err)
	}
	if p == nil {
		return apperror.NewUnknownReference("product", productID)
	}

	w, err := s.catalog.FindWarehouseByID(ctx, warehouseID)
	if err != nil {
		return apperror.Wrap(err)
	}
	if w == nil {
		return apperror.NewUnknownReference("warehouse", warehouseID)
	}
	return nil
}
