package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySalesResult resultado crudo de ventas/compras agrupadas por mes.
type MonthlySalesResult struct {
	Year      int
	Month     time.Month
	Sales     decimal.Decimal // Σ total_amount de ventas del mes
	Purchases decimal.Decimal // Σ total_amount de compras del mes
}

// CategorySalesResult resultado crudo de ventas agrupadas por categoría de producto.
type CategorySalesResult struct {
	Category  string
	UnitsSold int64
	Revenue   decimal.Decimal
}

// TopProductResult resultado crudo del ranking de productos más vendidos.
type TopProductResult struct {
	ProductID string
	SKU       string
	Name      string
	UnitsSold int64
	Revenue   decimal.Decimal
}

// ReportRepository define las consultas de solo lectura para los reportes del
// dashboard. Las implementaciones no modifican datos.
type ReportRepository interface {
	// CountProducts devuelve el total de productos y cuántos están en o bajo
	// su umbral de stock bajo.
	CountProducts(ctx context.Context) (total, lowStock int64, err error)

	// GetStockValue devuelve la valorización del inventario: Σ stock × precio.
	GetStockValue(ctx context.Context) (decimal.Decimal, error)

	// GetSalesTotal devuelve la suma de total_amount de las ventas del rango.
	// Usa COALESCE para devolver cero si no hay ventas en el período.
	GetSalesTotal(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	// GetMonthlySales devuelve ventas y compras por mes para los últimos
	// `months` meses, en orden cronológico ascendente.
	GetMonthlySales(ctx context.Context, months int) ([]MonthlySalesResult, error)

	// GetCategorySales agrupa unidades vendidas e ingresos por categoría de
	// producto en el rango dado, ordenado por ingreso descendente.
	GetCategorySales(ctx context.Context, start, end time.Time) ([]CategorySalesResult, error)

	// GetTopProducts devuelve los `limit` productos con más unidades vendidas
	// en el rango dado.
	GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]TopProductResult, error)
}
