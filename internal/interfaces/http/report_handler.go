package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-backoffice/internal/application/reports"
)

// ReportHandler expone los reportes agregados de ventas.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesReport godoc
// @Summary      Ventas agrupadas por método de pago en un rango de fechas
// @Tags         reports
// @Produce      json
// @Param        from  query  string  true  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  true  "Hasta (YYYY-MM-DD)"
// @Success      200   {object}  dto.SalesReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) SalesReport(c *fiber.Ctx) error {
	out, err := h.uc.SalesReport(c.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TodayStats godoc
// @Summary      Conteo y monto total de ventas del día actual
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.TodayStatsResponse
// @Router       /api/reports/today [get]
func (h *ReportHandler) TodayStats(c *fiber.Ctx) error {
	out, err := h.uc.TodayStats(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
