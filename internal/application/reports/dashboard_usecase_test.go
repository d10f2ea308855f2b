package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventrack-api/internal/application/reports"
	"github.com/jhoicas/Inventrack-api/internal/domain/repository"
)

type fakeReportRepo struct {
	totalProducts int64
	lowStock      int64
	stockValue    decimal.Decimal
	salesTotal    decimal.Decimal
	monthly       []repository.MonthlySalesResult
	categories    []repository.CategorySalesResult
	top           []repository.TopProductResult

	gotStart, gotEnd time.Time
	gotLimit         int
	failCounts       error
}

func (f *fakeReportRepo) CountProducts(context.Context) (int64, int64, error) {
	if f.failCounts != nil {
		return 0, 0, f.failCounts
	}
	return f.totalProducts, f.lowStock, nil
}

func (f *fakeReportRepo) GetStockValue(context.Context) (decimal.Decimal, error) {
	return f.stockValue, nil
}

func (f *fakeReportRepo) GetSalesTotal(_ context.Context, start, end time.Time) (decimal.Decimal, error) {
	f.gotStart, f.gotEnd = start, end
	return f.salesTotal, nil
}

func (f *fakeReportRepo) GetMonthlySales(_ context.Context, months int) ([]repository.MonthlySalesResult, error) {
	f.gotLimit = months
	return f.monthly, nil
}

func (f *fakeReportRepo) GetCategorySales(_ context.Context, start, end time.Time) ([]repository.CategorySalesResult, error) {
	f.gotStart, f.gotEnd = start, end
	return f.categories, nil
}

func (f *fakeReportRepo) GetTopProducts(_ context.Context, start, end time.Time, limit int) ([]repository.TopProductResult, error) {
	f.gotStart, f.gotEnd = start, end
	f.gotLimit = limit
	return f.top, nil
}

func TestGetSummary(t *testing.T) {
	repo := &fakeReportRepo{
		totalProducts: 42,
		lowStock:      3,
		stockValue:    decimal.NewFromFloat(15200.555),
		salesTotal:    decimal.NewFromFloat(980.4),
	}
	uc := reports.NewDashboardUseCase(repo)

	summary, err := uc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(42), summary.TotalProducts)
	assert.Equal(t, int64(3), summary.LowStockProducts)
	assert.True(t, decimal.NewFromFloat(15200.56).Equal(summary.StockValue), "se redondea a 2 decimales")
	assert.True(t, decimal.NewFromFloat(980.4).Equal(summary.MonthlySales))
	assert.NotEmpty(t, summary.MonthLabel)

	// El rango de ventas cubre el mes en curso.
	now := time.Now()
	assert.Equal(t, 1, repo.gotStart.Day())
	assert.Equal(t, now.Month(), repo.gotStart.Month())
}

func TestGetSummary_PropagaErrores(t *testing.T) {
	repo := &fakeReportRepo{failCounts: assert.AnError}
	uc := reports.NewDashboardUseCase(repo)

	_, err := uc.GetSummary(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
}

func TestGetMonthlySales_EtiquetasLegibles(t *testing.T) {
	repo := &fakeReportRepo{monthly: []repository.MonthlySalesResult{
		{Year: 2026, Month: time.July, Sales: decimal.NewFromInt(100), Purchases: decimal.NewFromInt(40)},
		{Year: 2026, Month: time.August, Sales: decimal.NewFromInt(250), Purchases: decimal.NewFromInt(90)},
	}}
	uc := reports.NewDashboardUseCase(repo)

	out, err := uc.GetMonthlySales(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Julio 2026", out[0].Month)
	assert.Equal(t, "Agosto 2026", out[1].Month)
	assert.Equal(t, 12, repo.gotLimit)
}

func TestGetTopProducts_DefaultsDeRangoYLimite(t *testing.T) {
	repo := &fakeReportRepo{top: []repository.TopProductResult{
		{ProductID: "p1", SKU: "SKU-1", Name: "Café", UnitsSold: 30, Revenue: decimal.NewFromInt(3000)},
	}}
	uc := reports.NewDashboardUseCase(repo)

	out, err := uc.GetTopProducts(context.Background(), time.Time{}, time.Time{}, 0)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 5, repo.gotLimit, "límite por defecto")
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), repo.gotStart, 2*time.Second,
		"rango por defecto: últimos 30 días")
}

func TestGetCategorySales(t *testing.T) {
	repo := &fakeReportRepo{categories: []repository.CategorySalesResult{
		{Category: "alimentos", UnitsSold: 12, Revenue: decimal.NewFromFloat(1200.005)},
	}}
	uc := reports.NewDashboardUseCase(repo)

	out, err := uc.GetCategorySales(context.Background(), time.Time{}, time.Time{})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "alimentos", out[0].Category)
	assert.True(t, decimal.NewFromFloat(1200.01).Equal(out[0].Revenue))
}
