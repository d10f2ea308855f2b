package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Stock nunca es negativo y solo se modifica vía transacciones (Transaction Poster);
// el CRUD de productos fija el stock inicial y no lo toca después.
type Product struct {
	ID                string
	SKU               string // código único
	Name              string
	Category          string
	Price             decimal.Decimal // precio de venta unitario
	Stock             int64           // unidades disponibles (>= 0)
	LowStockThreshold int64           // al llegar a este nivel se emite alerta
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLowStock indica si el stock actual está en o bajo el umbral de alerta.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.LowStockThreshold
}
