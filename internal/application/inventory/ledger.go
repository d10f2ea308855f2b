// Package inventory implementa el Stock Ledger: la única pieza autorizada a
// mutar el stock de un producto.
package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Inventrack-api/internal/application/notify"
	"github.com/jhoicas/Inventrack-api/internal/domain"
	"github.com/jhoicas/Inventrack-api/internal/domain/entity"
	"github.com/jhoicas/Inventrack-api/internal/domain/repository"
)

// StockLedger aplica deltas con signo al stock de un producto garantizando que
// nunca quede negativo. Las alertas de stock bajo se despachan al notificador
// inyectado en la construcción; un fallo o panic del notificador no afecta la
// mutación de stock.
type StockLedger struct {
	notifier notify.LowStockNotifier
}

// NewStockLedger construye el ledger con su notificador. notifier puede ser nil
// (sin alertas).
func NewStockLedger(notifier notify.LowStockNotifier) *StockLedger {
	return &StockLedger{notifier: notifier}
}

// Apply aplica el delta con signo al stock del producto y persiste el nuevo
// valor con el repositorio recibido (normalmente atado a la transacción SQL en
// curso). Si el resultado sería negativo devuelve domain.ErrInsufficientStock
// sin mutar nada. Si el nuevo stock queda en o bajo el umbral del producto,
// emite la alerta de stock bajo (best-effort).
func (l *StockLedger) Apply(
	ctx context.Context,
	productRepo repository.ProductRepository,
	product *entity.Product,
	delta int64,
	now time.Time,
) (int64, error) {
	newStock := product.Stock + delta
	if newStock < 0 {
		return product.Stock, domain.ErrInsufficientStock
	}
	if err := productRepo.UpdateStock(ctx, product.ID, newStock); err != nil {
		return product.Stock, err
	}
	product.Stock = newStock
	product.UpdatedAt = now

	if newStock <= product.LowStockThreshold {
		l.dispatch(notify.LowStockEvent{
			ProductID:    product.ID,
			ProductName:  product.Name,
			CurrentStock: newStock,
			Threshold:    product.LowStockThreshold,
			OccurredAt:   now,
		})
	}
	return newStock, nil
}

// Preview calcula el stock resultante sin persistir nada; falla con
// domain.ErrInsufficientStock si el resultado sería negativo.
func (l *StockLedger) Preview(current, delta int64) (int64, error) {
	newStock := current + delta
	if newStock < 0 {
		return current, domain.ErrInsufficientStock
	}
	return newStock, nil
}

// dispatch entrega el evento al notificador tragándose cualquier panic:
// la alerta nunca debe tumbar la operación de stock.
func (l *StockLedger) dispatch(event notify.LowStockEvent) {
	if l.notifier == nil {
		return
	}
	defer func() { _ = recover() }()
	l.notifier.Notify(event)
}
