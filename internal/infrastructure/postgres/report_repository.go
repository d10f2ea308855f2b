package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventrack-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes del dashboard.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// CountProducts devuelve el total de productos y cuántos están en alerta de
// stock bajo.
func (r *ReportRepo) CountProducts(ctx context.Context) (total, lowStock int64, err error) {
	const query = `
	SELECT
	    COUNT(*),
	    COUNT(*) FILTER (WHERE stock <= low_stock_threshold)
	FROM products`
	if err := r.pool.QueryRow(ctx, query).Scan(&total, &lowStock); err != nil {
		return 0, 0, fmt.Errorf("reports.CountProducts: %w", err)
	}
	return total, lowStock, nil
}

// GetStockValue devuelve la valorización del inventario: Σ stock × precio.
func (r *ReportRepo) GetStockValue(ctx context.Context) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(stock * price), 0) FROM products`
	var value decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&value); err != nil {
		return decimal.Zero, fmt.Errorf("reports.GetStockValue: %w", err)
	}
	return value, nil
}

// GetSalesTotal devuelve la suma de total_amount de las ventas del rango.
func (r *ReportRepo) GetSalesTotal(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(total_amount), 0)
	FROM transactions
	WHERE type = 'sale' AND created_at BETWEEN $1 AND $2`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, start, end).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("reports.GetSalesTotal: %w", err)
	}
	return total, nil
}

// GetMonthlySales devuelve ventas y compras por mes para los últimos `months`
// meses, en orden cronológico ascendente. Solo aparecen meses con movimiento.
func (r *ReportRepo) GetMonthlySales(ctx context.Context, months int) ([]repository.MonthlySalesResult, error) {
	const query = `
	SELECT
	    date_trunc('month', created_at)                                          AS month,
	    COALESCE(SUM(total_amount) FILTER (WHERE type = 'sale'), 0)              AS sales,
	    COALESCE(SUM(total_amount) FILTER (WHERE type = 'purchase'), 0)          AS purchases
	FROM transactions
	WHERE created_at >= date_trunc('month', now()) - ($1 - 1) * INTERVAL '1 month'
	GROUP BY 1
	ORDER BY 1`

	rows, err := r.pool.Query(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("reports.GetMonthlySales: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlySalesResult
	for rows.Next() {
		var month time.Time
		var row repository.MonthlySalesResult
		if err := rows.Scan(&month, &row.Sales, &row.Purchases); err != nil {
			return nil, fmt.Errorf("reports.GetMonthlySales scan: %w", err)
		}
		row.Year = month.Year()
		row.Month = month.Month()
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetCategorySales agrupa unidades vendidas e ingresos por categoría de
// producto en el rango dado.
func (r *ReportRepo) GetCategorySales(ctx context.Context, start, end time.Time) ([]repository.CategorySalesResult, error) {
	const query = `
	SELECT
	    COALESCE(NULLIF(p.category, ''), 'sin categoría')  AS category,
	    COALESCE(SUM(t.quantity), 0)                        AS units_sold,
	    COALESCE(SUM(t.total_amount), 0)                    AS revenue
	FROM transactions t
	JOIN products p ON p.id = t.product_id
	WHERE t.type = 'sale' AND t.created_at BETWEEN $1 AND $2
	GROUP BY 1
	ORDER BY revenue DESC`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("reports.GetCategorySales: %w", err)
	}
	defer rows.Close()

	var results []repository.CategorySalesResult
	for rows.Next() {
		var row repository.CategorySalesResult
		if err := rows.Scan(&row.Category, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("reports.GetCategorySales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTopProducts devuelve los `limit` productos con más unidades vendidas en
// el rango dado.
func (r *ReportRepo) GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    p.id,
	    p.sku,
	    p.name,
	    COALESCE(SUM(t.quantity), 0)      AS units_sold,
	    COALESCE(SUM(t.total_amount), 0)  AS revenue
	FROM transactions t
	JOIN products p ON p.id = t.product_id
	WHERE t.type = 'sale' AND t.created_at BETWEEN $1 AND $2
	GROUP BY p.id, p.sku, p.name
	ORDER BY units_sold DESC, revenue DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.Name, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("reports.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
