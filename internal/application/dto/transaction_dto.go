package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest entrada para contabilizar una transacción.
// Code lo asigna el cliente y debe ser único; CustomerID aplica a ventas y
// SupplierID a compras.
type CreateTransactionRequest struct {
	Code       string  `json:"code"`
	ProductID  string  `json:"product_id"`
	Type       string  `json:"type"` // purchase | sale
	Quantity   int64   `json:"quantity"`
	CustomerID *string `json:"customer_id"`
	SupplierID *string `json:"supplier_id"`
	Notes      string  `json:"notes"`
}

// UpdateTransactionRequest entrada para modificar una transacción contabilizada.
// Los campos ausentes conservan el valor existente.
type UpdateTransactionRequest struct {
	Type     *string `json:"type"`
	Quantity *int64  `json:"quantity"`
	Notes    *string `json:"notes"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	ProductID    string          `json:"product_id"`
	Type         string          `json:"type"`
	Quantity     int64           `json:"quantity"`
	CustomerID   *string         `json:"customer_id,omitempty"`
	SupplierID   *string         `json:"supplier_id,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	DiscountRate decimal.Decimal `json:"discount_rate"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// TransactionListResponse lista paginada de transacciones.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// DiscountPreviewResponse salida de la previsualización de descuento.
type DiscountPreviewResponse struct {
	Quantity         int64           `json:"quantity"`
	CustomerCategory string          `json:"customer_category"`
	DiscountRate     decimal.Decimal `json:"discount_rate"` // tasa en [0,1]
	DiscountPercent  decimal.Decimal `json:"discount_percent"`
}
