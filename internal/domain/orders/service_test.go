package orders

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"stockpile/internal/core/apperror"
	appctx "stockpile/internal/core/context"
	"stockpile/internal/core/id"
	"stockpile/internal/core/types"
	"stockpile/internal/domain/catalogs/product"
	"stockpile/internal/domain/catalogs/supplier"
	"stockpile/internal/domain/catalogs/warehouse"
	"stockpile/internal/domain/ledger"
)

// --- test doubles ---

type stockKey struct {
	productID   id.ID
	warehouseID id.ID
}

// memoryLedgerRepo implements ledger.Repository in memory.
type memoryLedgerRepo struct {
	entries map[stockKey]int64
}

func newMemoryLedgerRepo() *memoryLedgerRepo {
	return &memoryLedgerRepo{entries: make(map[stockKey]int64)}
}

func (m *memoryLedgerRepo) GetQuantity(ctx context.Context, productID, warehouseID id.ID) (int64, error) {
	return m.entries[stockKey{productID, warehouseID}], nil
}

func (m *memoryLedgerRepo) GetQuantityForUpdate(ctx context.Context, productID, warehouseID id.ID) (int64, error) {
	return m.entries[stockKey{productID, warehouseID}], nil
}

func (m *memoryLedgerRepo) ApplyDelta(ctx context.Context, productID, warehouseID id.ID, delta int64) error {
	m.entries[stockKey{productID, warehouseID}] += delta
	return nil
}

func (m *memoryLedgerRepo) GetByProduct(ctx context.Context, productID id.ID) ([]ledger.Entry, error) {
	var out []ledger.Entry
	for k, q := range m.entries {
		if k.productID == productID {
			out = append(out, ledger.Entry{ProductID: k.productID, WarehouseID: k.warehouseID, Quantity: q, UpdatedAt: time.Now()})
		}
	}
	return out, nil
}

func (m *memoryLedgerRepo) snapshot() map[stockKey]int64 {
	cp := make(map[stockKey]int64, len(m.entries))
	for k, v := range m.entries {
		cp[k] = v
	}
	return cp
}

func (m *memoryLedgerRepo) restore(s map[stockKey]int64) {
	m.entries = s
}

// memoryOrderRepo implements Repository in memory.
type memoryOrderRepo struct {
	purchases  []*PurchaseOrder
	sales      []*SalesOrder
	failCreate error
}

func (m *memoryOrderRepo) CreatePurchaseOrder(ctx context.Context, po *PurchaseOrder) error {
	if m.failCreate != nil {
		return m.failCreate
	}
	m.purchases = append(m.purchases, po)
	return nil
}

func (m *memoryOrderRepo) CreateSalesOrder(ctx context.Context, so *SalesOrder) error {
	if m.failCreate != nil {
		return m.failCreate
	}
	m.sales = append(m.sales, so)
	return nil
}

func (m *memoryOrderRepo) ListPurchaseOrders(ctx context.Context) ([]*PurchaseOrder, error) {
	return m.purchases, nil
}

func (m *memoryOrderRepo) ListSalesOrders(ctx context.Context) ([]*SalesOrder, error) {
	return m.sales, nil
}

// memoryCatalog resolves only the registered IDs.
type memoryCatalog struct {
	products   map[id.ID]*product.Product
	warehouses map[id.ID]*warehouse.Warehouse
	suppliers  map[id.ID]*supplier.Supplier
}

func newMemoryCatalog() *memoryCatalog {
	return &memoryCatalog{
		products:   make(map[id.ID]*product.Product),
		warehouses: make(map[id.ID]*warehouse.Warehouse),
		suppliers:  make(map[id.ID]*supplier.Supplier),
	}
}

func (m *memoryCatalog) FindProductByID(ctx context.Context, productID id.ID) (*product.Product, error) {
	return m.products[productID], nil
}

func (m *memoryCatalog) FindWarehouseByID(ctx context.Context, warehouseID id.ID) (*warehouse.Warehouse, error) {
	return m.warehouses[warehouseID], nil
}

func (m *memoryCatalog) FindSupplierByID(ctx context.Context, supplierID id.ID) (*supplier.Supplier, error) {
	return m.suppliers[supplierID], nil
}

// seqNumbers allocates PREFIX-1, PREFIX-2, ...
type seqNumbers struct {
	mu sync.Mutex
	n  int
}

func (s *seqNumbers) Next(ctx context.Context, prefix string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return prefix + "-" + time.Now().Format("2006") + "-" + strconv.Itoa(s.n), nil
}

// fakeTxManager serializes transactions with a mutex (standing in for the
// database row lock) and rolls the ledger back to its pre-tx state on error.
type fakeTxManager struct {
	mu     sync.Mutex
	ledger *memoryLedgerRepo
}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	before := f.ledger.snapshot()
	if err := fn(ctx); err != nil {
		f.ledger.restore(before)
		return err
	}
	return nil
}

// --- fixture ---

type fixture struct {
	svc         *Service
	orderRepo   *memoryOrderRepo
	ledgerRepo  *memoryLedgerRepo
	ledgerSvc   *ledger.Service
	productID   id.ID
	warehouseID id.ID
	supplierID  id.ID
}

func newFixture() *fixture {
	ledgerRepo := newMemoryLedgerRepo()
	ledgerSvc := ledger.NewService(ledgerRepo)
	orderRepo := &memoryOrderRepo{}
	catalog := newMemoryCatalog()

	p := product.New("SKU-1", "Widget", "Widgets", types.MustMoney("9.99"), 10)
	w := warehouse.New("WH-1", "Main", "")
	s := supplier.New("Acme", "", "", "")
	catalog.products[p.ID] = p
	catalog.warehouses[w.ID] = w
	catalog.suppliers[s.ID] = s

	txm := &fakeTxManager{ledger: ledgerRepo}
	svc := NewService(orderRepo, ledgerSvc, catalog, &seqNumbers{}, txm)

	return &fixture{
		svc:         svc,
		orderRepo:   orderRepo,
		ledgerRepo:  ledgerRepo,
		ledgerSvc:   ledgerSvc,
		productID:   p.ID,
		warehouseID: w.ID,
		supplierID:  s.ID,
	}
}

func (f *fixture) quantity() int64 {
	return f.ledgerRepo.entries[stockKey{f.productID, f.warehouseID}]
}

// --- purchase orders ---

func TestSubmitPurchaseOrder_CreditsLedgerAndRecordsOrder(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	po, err := f.svc.SubmitPurchaseOrder(ctx, PurchaseOrderRequest{
		SupplierID:  f.supplierID,
		ProductID:   f.productID,
		WarehouseID: f.warehouseID,
		Quantity:    25,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if po.Status != StatusReceived {
		t.Errorf("expected status %s, got %s", StatusReceived, po.Status)
	}
	if po.Number == "" {
		t.Error("expected a document number")
	}
	if got := f.quantity(); got != 25 {
		t.Errorf("expected ledger quantity 25, got %d", got)
	}
	if len(f.orderRepo.purchases) != 1 {
		t.Fatalf("expected 1 recorded purchase order, got %d", len(f.orderRepo.purchases))
	}
}

func TestSubmitPurchaseOrder_RecordsCallerIdentity(t *testing.T) {
	f := newFixture()
	ctx := appctx.WithUser(context.Background(), &appctx.UserContext{UserID: "clerk-7"})

	po, err := f.svc.SubmitPurchaseOrder(ctx, PurchaseOrderRequest{
		SupplierID:  f.supplierID,
		ProductID:   f.productID,
		WarehouseID: f.warehouseID,
		Quantity:    1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if po.CreatedBy != "clerk-7" {
		t.Errorf("expected createdBy clerk-7, got %q", po.CreatedBy)
	}
}

func TestSubmitPurchaseOrder_InvalidQuantity(t *testing.T) {
	f := newFixture()

	for _, qty := range []int64{0, -5} {
		_, err := f.svc.SubmitPurchaseOrder(context.Background(), PurchaseOrderRequest{
			SupplierID:  f.supplierID,
			ProductID:   f.productID,
			WarehouseID: f.warehouseID,
			Quantity:    qty,
		})

		appErr, ok := apperror.AsAppError(err)
		if !ok || appErr.Code != apperror.CodeInvalidQuantity {
			t.Fatalf("quantity %d: expected invalid quantity error, got %v", qty, err)
		}
	}

	if f.quantity() != 0 || len(f.orderRepo.purchases) != 0 {
		t.Error("rejected order must leave state untouched")
	}
}

func TestSubmitPurchaseOrder_UnknownSupplier(t *testing.T) {
	f := newFixture()

	_, err := f.svc.SubmitPurchaseOrder(context.Background(), PurchaseOrderRequest{
		SupplierID:  id.New(),
		ProductID:   f.productID,
		WarehouseID: f.warehouseID,
		Quantity:    5,
	})

	appErr, ok := apperror.AsAppError(err)
	if !ok || appErr.Code != apperror.CodeUnknownReference {
		t.Fatalf("expected unknown reference error, got %v", err)
	}
	if appErr.Details["entity"] != "supplier" {
		t.Errorf("expected supplier entity in details, got %v", appErr.Details)
	}
	if f.quantity() != 0 {
		t.Error("rejected order must not touch the ledger")
	}
}

func TestSubmitPurchaseOrder_PersistFailureRollsBackLedger(t *testing.T) {
	f := newFixture()
	f.orderRepo.failCreate = errors.New("disk on fire")

	_, err := f.svc.SubmitPurchaseOrder(context.Background(), PurchaseOrderRequest{
		SupplierID:  f.supplierID,
		ProductID:   f.productID,
		WarehouseID: f.warehouseID,
		Quantity:    25,
	})

	appErr, ok := apperror.AsAppError(err)
	if !ok || appErr.Code != apperror.CodeStorageFailure {
		t.Fatalf("expected storage failure, got %v", err)
	}
	if f.quantity() != 0 {
		t.Errorf("ledger credit must roll back with the failed order, got %d", f.quantity())
	}
}

// --- sales orders ---

func TestSubmitSalesOrder_DebitsLedgerAndRecordsOrder(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.ledgerRepo.entries[stockKey{f.productID, f.warehouseID}] = 40

	so, err := f.svc.SubmitSalesOrder(ctx, SalesOrderRequest{
		ProductID:    f.productID,
		WarehouseID:  f.warehouseID,
		Quantity:     15,
		CustomerName: "Globex",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if so.Status != StatusDispatched {
		t.Errorf("expected status %s, got %s", StatusDispatched, so.Status)
	}
	if so.CustomerName != "Globex" {
		t.Errorf("expected customer Globex, got %q", so.CustomerName)
	}
	if got := f.quantity(); got != 25 {
		t.Errorf("expected ledger quantity 25, got %d", got)
	}
	if len(f.orderRepo.sales) != 1 {
		t.Fatalf("expected 1 recorded sales order, got %d", len(f.orderRepo.sales))
	}
}

func TestSubmitSalesOrder_InsufficientStockLeavesStateUntouched(t *testing.T) {
	f := newFixture()
	f.ledgerRepo.entries[stockKey{f.productID, f.warehouseID}] = 10

	_, err := f.svc.SubmitSalesOrder(context.Background(), SalesOrderRequest{
		ProductID:   f.productID,
		WarehouseID: f.warehouseID,
		Quantity:    11,
	})

	if !apperror.IsInsufficientStock(err) {
		t.Fatalf("expected insufficient stock, got %v", err)
	}
	if f.quantity() != 10 {
		t.Errorf("quantity must stay 10, got %d", f.quantity())
	}
	if len(f.orderRepo.sales) != 0 {
		t.Error("rejected sales order must append no record")
	}
}

func TestSubmitSalesOrder_ExactAvailabilitySucceeds(t *testing.T) {
	f := newFixture()
	f.ledgerRepo.entries[stockKey{f.productID, f.warehouseID}] = 10

	_, err := f.svc.SubmitSalesOrder(context.Background(), SalesOrderRequest{
		ProductID:   f.productID,
		WarehouseID: f.warehouseID,
		Quantity:    10,
	})
	if err != nil {
		t.Fatalf("order for exactly the available quantity must succeed: %v", err)
	}
	if f.quantity() != 0 {
		t.Errorf("expected quantity 0, got %d", f.quantity())
	}
}

func TestSubmitSalesOrder_UnknownProduct(t *testing.T) {
	f := newFixture()

	_, err := f.svc.SubmitSalesOrder(context.Background(), SalesOrderRequest{
		ProductID:   id.New(),
		WarehouseID: f.warehouseID,
		Quantity:    1,
	})

	appErr, ok := apperror.AsAppError(err)
	if !ok || appErr.Code != apperror.CodeUnknownReference {
		t.Fatalf("expected unknown reference error, got %v", err)
	}
}

func TestConcurrentSalesOrders_NeverOversell(t *testing.T) {
	f := newFixture()
	f.ledgerRepo.entries[stockKey{f.productID, f.warehouseID}] = 10

	const workers = 8
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.SubmitSalesOrder(context.Background(), SalesOrderRequest{
				ProductID:   f.productID,
				WarehouseID: f.warehouseID,
				Quantity:    3,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var accepted, rejected int
	for err := range results {
		switch {
		case err == nil:
			accepted++
		case apperror.IsInsufficientStock(err):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// 10 units, orders of 3: at most 3 can be accepted
	if accepted != 3 {
		t.Errorf("expected exactly 3 accepted orders, got %d (rejected %d)", accepted, rejected)
	}
	if got := f.quantity(); got != 1 {
		t.Errorf("expected 1 unit left, got %d", got)
	}
	if len(f.orderRepo.sales) != accepted {
		t.Errorf("recorded orders (%d) must match accepted orders (%d)", len(f.orderRepo.sales), accepted)
	}
}

// --- round trip ---

func TestPurchaseThenSalesRoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.SubmitPurchaseOrder(ctx, PurchaseOrderRequest{
		SupplierID:  f.supplierID,
		ProductID:   f.productID,
		WarehouseID: f.warehouseID,
		Quantity:    30,
	})
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}

	_, err = f.svc.SubmitSalesOrder(ctx, SalesOrderRequest{
		ProductID:   f.productID,
		WarehouseID: f.warehouseID,
		Quantity:    12,
	})
	if err != nil {
		t.Fatalf("sale failed: %v", err)
	}

	if got := f.quantity(); got != 18 {
		t.Errorf("expected 18 after +30/-12, got %d", got)
	}

	pos, _ := f.svc.ListPurchaseOrders(ctx)
	sos, _ := f.svc.ListSalesOrders(ctx)
	if len(pos) != 1 || len(sos) != 1 {
		t.Errorf("expected one order of each kind, got %d purchases and %d sales", len(pos), len(sos))
	}
}
