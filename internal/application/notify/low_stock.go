// Package notify define el canal de alertas de stock bajo.
//
// El notificador se inyecta explícitamente en el Stock Ledger al construirlo;
// no hay registro global de listeners. La entrega es best-effort: el ledger
// nunca falla una mutación de stock por un error del notificador.
package notify

import (
	"time"

	"github.com/jhoicas/Inventrack-api/pkg/logger"
)

// LowStockEvent evento emitido cuando el stock de un producto queda en o bajo
// su umbral después de una mutación.
type LowStockEvent struct {
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	CurrentStock int64     `json:"current_stock"`
	Threshold    int64     `json:"threshold"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// LowStockNotifier consume eventos de stock bajo. A lo sumo un handler;
// sin reintentos ni garantía de entrega.
type LowStockNotifier interface {
	Notify(event LowStockEvent)
}

// LogNotifier escribe las alertas en el log estructurado.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador sobre el logger de la aplicación.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify registra la alerta de stock bajo.
func (n *LogNotifier) Notify(event LowStockEvent) {
	n.log.Warn().
		Str("product_id", event.ProductID).
		Str("product_name", event.ProductName).
		Int64("current_stock", event.CurrentStock).
		Int64("threshold", event.Threshold).
		Time("occurred_at", event.OccurredAt).
		Msg("alerta de stock bajo")
}

// Func adapta una función como LowStockNotifier (útil en tests y wiring).
type Func func(event LowStockEvent)

// Notify invoca la función.
func (f Func) Notify(event LowStockEvent) { f(event) }
