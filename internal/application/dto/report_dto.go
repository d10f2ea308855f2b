package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO métricas agregadas para el encabezado del dashboard.
type DashboardSummaryDTO struct {
	TotalProducts    int64           `json:"total_products"`
	LowStockProducts int64           `json:"low_stock_products"`
	StockValue       decimal.Decimal `json:"stock_value"`
	MonthlySales     decimal.Decimal `json:"monthly_sales"`
	MonthLabel       string          `json:"month_label"`
}

// MonthlySalesDTO ventas y compras de un mes.
type MonthlySalesDTO struct {
	Month     string          `json:"month"` // etiqueta legible, ej. "Agosto 2026"
	Year      int             `json:"year"`
	Sales     decimal.Decimal `json:"sales"`
	Purchases decimal.Decimal `json:"purchases"`
}

// CategorySalesDTO ingresos por categoría de producto.
type CategorySalesDTO struct {
	Category  string          `json:"category"`
	UnitsSold int64           `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// TopProductDTO un producto del ranking de más vendidos.
type TopProductDTO struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	UnitsSold int64           `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}
