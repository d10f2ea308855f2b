package transaction_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventrack-api/internal/application/dto"
	"github.com/jhoicas/Inventrack-api/internal/application/inventory"
	apptx "github.com/jhoicas/Inventrack-api/internal/application/transaction"
	"github.com/jhoicas/Inventrack-api/internal/domain"
	"github.com/jhoicas/Inventrack-api/internal/domain/entity"
	"github.com/jhoicas/Inventrack-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un memStore compartido y un runner que imita el
// Commit/Rollback del TxRunner real restaurando un snapshot ante error.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products     map[string]*entity.Product
	transactions map[string]*entity.Transaction
	customers    map[string]*entity.Customer
	rules        []entity.DiscountRule
}

func newMemStore() *memStore {
	return &memStore{
		products:     map[string]*entity.Product{},
		transactions: map[string]*entity.Transaction{},
		customers:    map[string]*entity.Customer{},
	}
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for id, p := range s.products {
		clone := *p
		cp.products[id] = &clone
	}
	for id, tx := range s.transactions {
		clone := *tx
		cp.transactions[id] = &clone
	}
	for id, c := range s.customers {
		clone := *c
		cp.customers[id] = &clone
	}
	cp.rules = append([]entity.DiscountRule(nil), s.rules...)
	return cp
}

func (s *memStore) restore(from *memStore) {
	s.products = from.products
	s.transactions = from.transactions
	s.customers = from.customers
	s.rules = from.rules
}

type fakeProductRepo struct {
	repository.ProductRepository
	store *memStore
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.store.products[id], nil
}

func (r *fakeProductRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, productID string, stock int64) error {
	p, ok := r.store.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

type fakeTransactionRepo struct {
	repository.TransactionRepository
	store *memStore
}

func (r *fakeTransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	clone := *tx
	r.store.transactions[tx.ID] = &clone
	return nil
}

func (r *fakeTransactionRepo) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	tx, ok := r.store.transactions[id]
	if !ok {
		return nil, nil
	}
	clone := *tx
	return &clone, nil
}

func (r *fakeTransactionRepo) GetByCode(_ context.Context, code string) (*entity.Transaction, error) {
	for _, tx := range r.store.transactions {
		if tx.Code == code {
			clone := *tx
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, tx *entity.Transaction) error {
	clone := *tx
	r.store.transactions[tx.ID] = &clone
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id string) error {
	delete(r.store.transactions, id)
	return nil
}

type fakeCustomerRepo struct {
	repository.CustomerRepository
	store *memStore
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return r.store.customers[id], nil
}

type fakeRuleRepo struct {
	repository.DiscountRuleRepository
	store *memStore
}

func (r *fakeRuleRepo) ListActive(_ context.Context) ([]entity.DiscountRule, error) {
	var active []entity.DiscountRule
	for _, rule := range r.store.rules {
		if rule.Active {
			active = append(active, rule)
		}
	}
	return active, nil
}

type fakeTxRunner struct {
	store *memStore
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	txRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	ruleRepo repository.DiscountRuleRepository,
) error) error {
	snap := f.store.snapshot()
	err := fn(
		&fakeTransactionRepo{store: f.store},
		&fakeProductRepo{store: f.store},
		&fakeCustomerRepo{store: f.store},
		&fakeRuleRepo{store: f.store},
	)
	if err != nil {
		f.store.restore(snap)
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

func setup() (*memStore, *apptx.PostTransactionUseCase) {
	store := newMemStore()
	store.products["prod-1"] = &entity.Product{
		ID:                "prod-1",
		SKU:               "SKU-001",
		Name:              "Café 500g",
		Category:          "alimentos",
		Price:             decimal.NewFromInt(100),
		Stock:             10,
		LowStockThreshold: 2,
	}
	store.customers["cust-vip"] = &entity.Customer{
		ID:       "cust-vip",
		Name:     "Cliente VIP",
		Category: entity.CustomerCategoryVIP,
	}
	ledger := inventory.NewStockLedger(nil)
	uc := apptx.NewPostTransactionUseCase(
		&fakeTxRunner{store: store},
		ledger,
		&fakeTransactionRepo{store: store},
		&fakeRuleRepo{store: store},
	)
	return store, uc
}

func strPtr(s string) *string { return &s }

func saleRequest(code string, qty int64) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Code:      code,
		ProductID: "prod-1",
		Type:      entity.TransactionTypeSale,
		Quantity:  qty,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_VentaRestaStockYSacaSnapshotDePrecio(t *testing.T) {
	store, uc := setup()

	resp, err := uc.Create(context.Background(), saleRequest("TRX-1", 3))

	require.NoError(t, err)
	assert.Equal(t, int64(7), store.products["prod-1"].Stock)
	// price=100, qty=3, descuento 0 → total 300 (vector de referencia)
	assert.True(t, decimal.NewFromInt(300).Equal(resp.TotalAmount))
	assert.True(t, decimal.NewFromInt(100).Equal(resp.UnitPrice))
	assert.True(t, resp.DiscountRate.IsZero())
}

func TestCreate_CompraSumaStock(t *testing.T) {
	store, uc := setup()

	_, err := uc.Create(context.Background(), dto.CreateTransactionRequest{
		Code:       "TRX-1",
		ProductID:  "prod-1",
		Type:       entity.TransactionTypePurchase,
		Quantity:   5,
		SupplierID: strPtr("supp-1"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(15), store.products["prod-1"].Stock)
}

func TestCreate_VentaConClienteVIPAplicaElMejorDescuento(t *testing.T) {
	store, uc := setup()
	store.rules = []entity.DiscountRule{
		{ID: "r1", Type: entity.RuleTypeQuantity, Threshold: 3, Percent: decimal.NewFromInt(5), Active: true},
		{ID: "r2", Type: entity.RuleTypeCustomerCategory, TargetCategory: "vip", Percent: decimal.NewFromInt(15), Active: true},
	}

	in := saleRequest("TRX-1", 4)
	in.CustomerID = strPtr("cust-vip")
	resp, err := uc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(0.15).Equal(resp.DiscountRate))
	// 100*4 = 400, -15% = 340
	assert.True(t, decimal.NewFromInt(340).Equal(resp.TotalAmount))
}

func TestCreate_ClienteInexistenteDegradaADescuentoCero(t *testing.T) {
	_, uc := setup()

	in := saleRequest("TRX-1", 4)
	in.CustomerID = strPtr("no-existe")
	resp, err := uc.Create(context.Background(), in)

	require.NoError(t, err, "la venta no se bloquea por no poder calcular descuento")
	assert.True(t, resp.DiscountRate.IsZero())
}

func TestCreate_ValidacionDeEntrada(t *testing.T) {
	_, uc := setup()
	ctx := context.Background()

	cases := []dto.CreateTransactionRequest{
		{Code: "", ProductID: "prod-1", Type: "sale", Quantity: 1},
		{Code: "T", ProductID: "", Type: "sale", Quantity: 1},
		{Code: "T", ProductID: "prod-1", Type: "sale", Quantity: 0},
		{Code: "T", ProductID: "prod-1", Type: "sale", Quantity: -2},
		{Code: "T", ProductID: "prod-1", Type: "trade", Quantity: 1},
		// referencias cruzadas inválidas
		{Code: "T", ProductID: "prod-1", Type: "sale", Quantity: 1, SupplierID: strPtr("supp-1")},
		{Code: "T", ProductID: "prod-1", Type: "purchase", Quantity: 1, CustomerID: strPtr("cust-vip")},
	}
	for _, in := range cases {
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCreate_ProductoInexistente(t *testing.T) {
	_, uc := setup()
	in := saleRequest("TRX-1", 1)
	in.ProductID = "no-existe"

	_, err := uc.Create(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_CodigoDuplicadoNoMutaNada(t *testing.T) {
	store, uc := setup()
	_, err := uc.Create(context.Background(), saleRequest("TRX-1", 2))
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), saleRequest("TRX-1", 3))

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, int64(8), store.products["prod-1"].Stock, "el stock no debe cambiar")
	assert.Len(t, store.transactions, 1, "no debe insertarse una segunda fila")
}

func TestCreate_StockInsuficienteNoDejaRastro(t *testing.T) {
	store, uc := setup()

	_, err := uc.Create(context.Background(), saleRequest("TRX-1", 11))

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(10), store.products["prod-1"].Stock)
	assert.Empty(t, store.transactions)
}

func TestCreate_SnapshotNoSigueCambiosDePrecio(t *testing.T) {
	store, uc := setup()
	resp, err := uc.Create(context.Background(), saleRequest("TRX-1", 2))
	require.NoError(t, err)

	// El precio del producto sube después de contabilizar.
	store.products["prod-1"].Price = decimal.NewFromInt(999)

	got, err := uc.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(got.UnitPrice))
	assert.True(t, decimal.NewFromInt(200).Equal(got.TotalAmount))
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_ReviertaYReaplicaElDelta(t *testing.T) {
	store, uc := setup()
	resp, err := uc.Create(context.Background(), saleRequest("TRX-1", 4))
	require.NoError(t, err)
	require.Equal(t, int64(6), store.products["prod-1"].Stock)

	qty := int64(6)
	_, err = uc.Update(context.Background(), resp.ID, dto.UpdateTransactionRequest{Quantity: &qty})

	require.NoError(t, err)
	// 10 - 4 → revertir (+4) → 10 → nueva venta de 6 → 4
	assert.Equal(t, int64(4), store.products["prod-1"].Stock)
}

func TestUpdate_CambioDeTipoInvierteElDelta(t *testing.T) {
	store, uc := setup()
	resp, err := uc.Create(context.Background(), saleRequest("TRX-1", 4))
	require.NoError(t, err)

	newType := entity.TransactionTypePurchase
	_, err = uc.Update(context.Background(), resp.ID, dto.UpdateTransactionRequest{Type: &newType})

	require.NoError(t, err)
	// 6 → revertir venta (+4) → 10 → compra de 4 → 14
	assert.Equal(t, int64(14), store.products["prod-1"].Stock)
}

func TestUpdate_RecalculaTotalConPrecioVigenteSinReevaluarDescuento(t *testing.T) {
	store, uc := setup()
	store.rules = []entity.DiscountRule{
		{ID: "r2", Type: entity.RuleTypeCustomerCategory, TargetCategory: "vip", Percent: decimal.NewFromInt(10), Active: true},
	}
	in := saleRequest("TRX-1", 2)
	in.CustomerID = strPtr("cust-vip")
	resp, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	require.True(t, decimal.NewFromFloat(0.10).Equal(resp.DiscountRate))

	// Cambian precio y reglas antes del update.
	store.products["prod-1"].Price = decimal.NewFromInt(200)
	store.rules = []entity.DiscountRule{
		{ID: "r3", Type: entity.RuleTypeCustomerCategory, TargetCategory: "vip", Percent: decimal.NewFromInt(50), Active: true},
	}

	qty := int64(3)
	got, err := uc.Update(context.Background(), resp.ID, dto.UpdateTransactionRequest{Quantity: &qty})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(200).Equal(got.UnitPrice), "el precio sí se retoma del producto")
	assert.True(t, decimal.NewFromFloat(0.10).Equal(got.DiscountRate), "la tasa almacenada se conserva")
	// 200*3 = 600, -10% = 540 (no -50%)
	assert.True(t, decimal.NewFromInt(540).Equal(got.TotalAmount))
}

func TestUpdate_StockInsuficienteNoDejaMutacionParcial(t *testing.T) {
	store, uc := setup()
	resp, err := uc.Create(context.Background(), saleRequest("TRX-1", 4))
	require.NoError(t, err)

	qty := int64(20)
	_, err = uc.Update(context.Background(), resp.ID, dto.UpdateTransactionRequest{Quantity: &qty})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(6), store.products["prod-1"].Stock, "el stock queda como antes del update")
	tx := store.transactions[resp.ID]
	assert.Equal(t, int64(4), tx.Quantity, "la transacción conserva sus valores")
}

func TestUpdate_TransaccionInexistente(t *testing.T) {
	_, uc := setup()
	qty := int64(1)

	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateTransactionRequest{Quantity: &qty})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_EntradaInvalida(t *testing.T) {
	_, uc := setup()
	badQty := int64(0)
	badType := "trade"

	_, err := uc.Update(context.Background(), "x", dto.UpdateTransactionRequest{Quantity: &badQty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(context.Background(), "x", dto.UpdateTransactionRequest{Type: &badType})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_CrearYBorrarEsInversoExacto(t *testing.T) {
	store, uc := setup()
	before := store.products["prod-1"].Stock

	resp, err := uc.Create(context.Background(), saleRequest("TRX-1", 6))
	require.NoError(t, err)
	require.Equal(t, before-6, store.products["prod-1"].Stock)

	require.NoError(t, uc.Delete(context.Background(), resp.ID))

	assert.Equal(t, before, store.products["prod-1"].Stock, "el stock vuelve exactamente al valor previo")
	assert.Empty(t, store.transactions)
}

func TestDelete_CompraYaConsumidaSeRechaza(t *testing.T) {
	store, uc := setup()
	// Compra de 5: stock 10 → 15.
	resp, err := uc.Create(context.Background(), dto.CreateTransactionRequest{
		Code: "TRX-1", ProductID: "prod-1", Type: entity.TransactionTypePurchase, Quantity: 5,
	})
	require.NoError(t, err)
	// El stock se consume por fuera (ventas posteriores): queda en 3.
	store.products["prod-1"].Stock = 3

	err = uc.Delete(context.Background(), resp.ID)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "revertir la compra dejaría stock -2")
	assert.Len(t, store.transactions, 1, "la transacción no se elimina")
	assert.Equal(t, int64(3), store.products["prod-1"].Stock)
}

func TestDelete_TransaccionInexistente(t *testing.T) {
	_, uc := setup()
	assert.ErrorIs(t, uc.Delete(context.Background(), "no-existe"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// PreviewDiscount
// ──────────────────────────────────────────────────────────────────────────────

func TestPreviewDiscount(t *testing.T) {
	store, uc := setup()
	store.rules = []entity.DiscountRule{
		{ID: "r1", Type: entity.RuleTypeQuantity, Threshold: 10, Percent: decimal.NewFromInt(5), Active: true},
		{ID: "r2", Type: entity.RuleTypeCustomerCategory, TargetCategory: "vip", Percent: decimal.NewFromInt(15), Active: true},
	}

	resp, err := uc.PreviewDiscount(context.Background(), 12, "vip")

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(15).Equal(resp.DiscountPercent))
	assert.True(t, decimal.NewFromFloat(0.15).Equal(resp.DiscountRate))

	_, err = uc.PreviewDiscount(context.Background(), 0, "vip")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
