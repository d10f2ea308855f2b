package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de inventario.
const (
	TransactionTypePurchase = "purchase" // compra a proveedor: suma stock
	TransactionTypeSale     = "sale"     // venta a cliente: resta stock
)

// IsValidTransactionType valida el tipo de transacción.
func IsValidTransactionType(t string) bool {
	return t == TransactionTypePurchase || t == TransactionTypeSale
}

// Transaction representa una compra o venta ya contabilizada.
// UnitPrice, DiscountRate y TotalAmount son snapshots tomados al momento de
// contabilizar: no se recalculan si el precio del producto cambia después.
type Transaction struct {
	ID           string
	Code         string // identificador de negocio único (ej. "TRX-2026-0001")
	ProductID    string
	Type         string  // purchase | sale
	Quantity     int64   // > 0
	CustomerID   *string // solo ventas
	SupplierID   *string // solo compras
	UnitPrice    decimal.Decimal
	DiscountRate decimal.Decimal // tasa en [0,1], snapshot
	TotalAmount  decimal.Decimal
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StockDelta devuelve el delta con signo que esta transacción aplica al stock:
// +Quantity para compras, -Quantity para ventas.
func (t *Transaction) StockDelta() int64 {
	if t.Type == TransactionTypeSale {
		return -t.Quantity
	}
	return t.Quantity
}

// ReversalDelta devuelve el delta inverso exacto (deshacer la transacción).
func (t *Transaction) ReversalDelta() int64 {
	return -t.StockDelta()
}

// StockDeltaFor calcula el delta con signo para un tipo y cantidad dados.
func StockDeltaFor(txType string, quantity int64) int64 {
	if txType == TransactionTypeSale {
		return -quantity
	}
	return quantity
}
