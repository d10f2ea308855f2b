package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventrack-api/internal/application/inventory"
	"github.com/jhoicas/Inventrack-api/internal/application/notify"
	"github.com/jhoicas/Inventrack-api/internal/domain"
	"github.com/jhoicas/Inventrack-api/internal/domain/entity"
	"github.com/jhoicas/Inventrack-api/internal/domain/repository"
)

// stubProductRepo implementa solo UpdateStock; el resto no se usa en estos tests.
type stubProductRepo struct {
	repository.ProductRepository
	updatedID    string
	updatedStock int64
	calls        int
	failWith     error
}

func (s *stubProductRepo) UpdateStock(_ context.Context, productID string, stock int64) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.updatedID = productID
	s.updatedStock = stock
	s.calls++
	return nil
}

func newProduct(stock, threshold int64) *entity.Product {
	return &entity.Product{
		ID:                "prod-1",
		SKU:               "SKU-001",
		Name:              "Café de prueba",
		Price:             decimal.NewFromInt(100),
		Stock:             stock,
		LowStockThreshold: threshold,
	}
}

func TestApply_VentaRestaExactamenteLaCantidad(t *testing.T) {
	repo := &stubProductRepo{}
	ledger := inventory.NewStockLedger(nil)
	product := newProduct(10, 2)

	newStock, err := ledger.Apply(context.Background(), repo, product, -6, time.Now())

	require.NoError(t, err)
	assert.Equal(t, int64(4), newStock)
	assert.Equal(t, int64(4), product.Stock, "la entidad debe reflejar el nuevo stock")
	assert.Equal(t, int64(4), repo.updatedStock)
	assert.Equal(t, "prod-1", repo.updatedID)
}

func TestApply_CompraSumaExactamenteLaCantidad(t *testing.T) {
	repo := &stubProductRepo{}
	ledger := inventory.NewStockLedger(nil)
	product := newProduct(10, 2)

	newStock, err := ledger.Apply(context.Background(), repo, product, 7, time.Now())

	require.NoError(t, err)
	assert.Equal(t, int64(17), newStock)
}

func TestApply_RechazaStockNegativoSinMutar(t *testing.T) {
	repo := &stubProductRepo{}
	ledger := inventory.NewStockLedger(nil)
	product := newProduct(5, 2)

	_, err := ledger.Apply(context.Background(), repo, product, -6, time.Now())

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(5), product.Stock, "el stock no debe cambiar")
	assert.Zero(t, repo.calls, "no debe persistirse nada")
}

// Ejemplo de referencia: stock=10, umbral=5, venta de 6 → stock 4 y alerta con
// current_stock=4.
func TestApply_EmiteAlertaAlCruzarElUmbral(t *testing.T) {
	repo := &stubProductRepo{}
	var got *notify.LowStockEvent
	ledger := inventory.NewStockLedger(notify.Func(func(e notify.LowStockEvent) {
		got = &e
	}))
	product := newProduct(10, 5)

	_, err := ledger.Apply(context.Background(), repo, product, -6, time.Now())

	require.NoError(t, err)
	require.NotNil(t, got, "debe emitirse la alerta de stock bajo")
	assert.Equal(t, int64(4), got.CurrentStock)
	assert.Equal(t, int64(5), got.Threshold)
	assert.Equal(t, "prod-1", got.ProductID)
	assert.Equal(t, "Café de prueba", got.ProductName)
}

func TestApply_NoEmiteAlertaSobreElUmbral(t *testing.T) {
	repo := &stubProductRepo{}
	fired := false
	ledger := inventory.NewStockLedger(notify.Func(func(notify.LowStockEvent) { fired = true }))
	product := newProduct(10, 5)

	_, err := ledger.Apply(context.Background(), repo, product, -2, time.Now())

	require.NoError(t, err)
	assert.False(t, fired, "stock 8 sobre umbral 5: sin alerta")
}

func TestApply_PanicDelNotificadorNoFallaLaOperacion(t *testing.T) {
	repo := &stubProductRepo{}
	ledger := inventory.NewStockLedger(notify.Func(func(notify.LowStockEvent) {
		panic("handler roto")
	}))
	product := newProduct(6, 5)

	newStock, err := ledger.Apply(context.Background(), repo, product, -2, time.Now())

	require.NoError(t, err, "el fallo del notificador nunca propaga al caller")
	assert.Equal(t, int64(4), newStock)
	assert.Equal(t, 1, repo.calls)
}

func TestApply_ErrorDePersistenciaNoTocaLaEntidad(t *testing.T) {
	repo := &stubProductRepo{failWith: assert.AnError}
	ledger := inventory.NewStockLedger(nil)
	product := newProduct(10, 2)

	_, err := ledger.Apply(context.Background(), repo, product, -3, time.Now())

	assert.Error(t, err)
	assert.Equal(t, int64(10), product.Stock)
}

func TestPreview_AplicaYReviertaEsInversoExacto(t *testing.T) {
	ledger := inventory.NewStockLedger(nil)

	after, err := ledger.Preview(10, -4)
	require.NoError(t, err)
	restored, err := ledger.Preview(after, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(10), restored, "aplicar y revertir debe devolver el stock original")
}
