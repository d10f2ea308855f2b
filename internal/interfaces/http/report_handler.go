package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventrack-api/internal/application/dto"
	"github.com/jhoicas/Inventrack-api/internal/application/reports"
)

// ReportHandler maneja los endpoints del módulo de reportes.
type ReportHandler struct {
	uc *reports.DashboardUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.DashboardUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// GetDashboard godoc
// @Summary      Resumen del dashboard
// @Description  Totales de productos, alertas de stock bajo, valorización y ventas del mes en curso.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) GetDashboard(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// GetMonthlySales godoc
// @Summary      Ventas y compras por mes
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.MonthlySalesDTO
// @Router       /api/reports/monthly-sales [get]
func (h *ReportHandler) GetMonthlySales(c *fiber.Ctx) error {
	out, err := h.uc.GetMonthlySales(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetCategorySales godoc
// @Summary      Ventas por categoría de producto
// @Tags         reports
// @Produce      json
// @Param        start  query  string  false  "Inicio del rango (RFC3339)"
// @Param        end    query  string  false  "Fin del rango (RFC3339)"
// @Success      200  {array}  dto.CategorySalesDTO
// @Router       /api/reports/category-sales [get]
func (h *ReportHandler) GetCategorySales(c *fiber.Ctx) error {
	start, end, err := rangeParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start/end deben ser fechas RFC3339"})
	}
	out, err := h.uc.GetCategorySales(c.Context(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetTopProducts godoc
// @Summary      Productos más vendidos
// @Tags         reports
// @Produce      json
// @Param        start  query  string  false  "Inicio del rango (RFC3339)"
// @Param        end    query  string  false  "Fin del rango (RFC3339)"
// @Param        limit  query  int     false  "Cantidad de productos"  default(5)
// @Success      200  {array}  dto.TopProductDTO
// @Router       /api/reports/top-products [get]
func (h *ReportHandler) GetTopProducts(c *fiber.Ctx) error {
	start, end, err := rangeParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start/end deben ser fechas RFC3339"})
	}
	limit := c.QueryInt("limit", 0)
	out, err := h.uc.GetTopProducts(c.Context(), start, end, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// rangeParams lee start/end opcionales del query string. Valores cero delegan
// el rango por defecto al caso de uso.
func rangeParams(c *fiber.Ctx) (start, end time.Time, err error) {
	if s := c.Query("start"); s != "" {
		start, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if e := c.Query("end"); e != "" {
		end, err = time.Parse(time.RFC3339, e)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return start, end, nil
}
