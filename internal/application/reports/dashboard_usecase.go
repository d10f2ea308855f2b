// Package reports contiene los casos de uso de reportes agregados del
// dashboard (solo lectura).
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventrack-api/internal/application/dto"
	"github.com/jhoicas/Inventrack-api/internal/domain/repository"
)

const (
	defaultTopProducts = 5  // productos en el widget de más vendidos
	defaultMonthsBack  = 12 // meses del reporte de ventas mensuales
	defaultRangeDays   = 30 // rango por defecto para reportes con fechas
)

// DashboardUseCase genera las métricas agregadas del dashboard.
//
// Fuente de datos: ReportRepository (consultas read-only). No accede
// directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

// GetSummary construye el resumen del dashboard. Tres consultas en paralelo:
//
//  1. CountProducts        → totales y productos en alerta
//  2. GetStockValue        → valorización del inventario
//  3. GetSalesTotal(mes)   → ventas del mes en curso
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		Add(24*time.Hour - time.Nanosecond)

	type countsResult struct {
		total, lowStock int64
		err             error
	}
	type decimalResult struct {
		value decimal.Decimal
		err   error
	}

	countsCh := make(chan countsResult, 1)
	valueCh := make(chan decimalResult, 1)
	salesCh := make(chan decimalResult, 1)

	go func() {
		total, low, err := uc.reportRepo.CountProducts(ctx)
		countsCh <- countsResult{total, low, err}
	}()
	go func() {
		v, err := uc.reportRepo.GetStockValue(ctx)
		valueCh <- decimalResult{v, err}
	}()
	go func() {
		v, err := uc.reportRepo.GetSalesTotal(ctx, monthStart, monthEnd)
		salesCh <- decimalResult{v, err}
	}()

	counts := <-countsCh
	value := <-valueCh
	sales := <-salesCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de productos: %w", counts.err)
	}
	if value.err != nil {
		return nil, fmt.Errorf("dashboard: valorización de inventario: %w", value.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", sales.err)
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:    counts.total,
		LowStockProducts: counts.lowStock,
		StockValue:       value.value.Round(2),
		MonthlySales:     sales.value.Round(2),
		MonthLabel:       monthLabel(now),
	}, nil
}

// GetMonthlySales devuelve ventas y compras por mes de los últimos 12 meses.
func (uc *DashboardUseCase) GetMonthlySales(ctx context.Context) ([]dto.MonthlySalesDTO, error) {
	rows, err := uc.reportRepo.GetMonthlySales(ctx, defaultMonthsBack)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas mensuales: %w", err)
	}
	out := make([]dto.MonthlySalesDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MonthlySalesDTO{
			Month:     fmt.Sprintf("%s %d", monthName(r.Month), r.Year),
			Year:      r.Year,
			Sales:     r.Sales.Round(2),
			Purchases: r.Purchases.Round(2),
		})
	}
	return out, nil
}

// GetCategorySales agrupa los ingresos por categoría de producto en el rango
// dado; con fechas cero usa los últimos 30 días.
func (uc *DashboardUseCase) GetCategorySales(ctx context.Context, start, end time.Time) ([]dto.CategorySalesDTO, error) {
	start, end = defaultRange(start, end)
	rows, err := uc.reportRepo.GetCategorySales(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas por categoría: %w", err)
	}
	out := make([]dto.CategorySalesDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CategorySalesDTO{
			Category:  r.Category,
			UnitsSold: r.UnitsSold,
			Revenue:   r.Revenue.Round(2),
		})
	}
	return out, nil
}

// GetTopProducts devuelve los productos más vendidos del rango; con fechas
// cero usa los últimos 30 días y con limit <= 0 el valor por defecto.
func (uc *DashboardUseCase) GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]dto.TopProductDTO, error) {
	if limit <= 0 {
		limit = defaultTopProducts
	}
	start, end = defaultRange(start, end)
	rows, err := uc.reportRepo.GetTopProducts(ctx, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("reporte de productos más vendidos: %w", err)
	}
	out := make([]dto.TopProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductDTO{
			ProductID: r.ProductID,
			SKU:       r.SKU,
			Name:      r.Name,
			UnitsSold: r.UnitsSold,
			Revenue:   r.Revenue.Round(2),
		})
	}
	return out, nil
}

func defaultRange(start, end time.Time) (time.Time, time.Time) {
	if end.IsZero() {
		end = time.Now()
	}
	if start.IsZero() {
		start = end.AddDate(0, 0, -defaultRangeDays)
	}
	return start, end
}

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

func monthName(m time.Month) string {
	return monthNames[m-1]
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", monthName(t.Month()), t.Year())
}
