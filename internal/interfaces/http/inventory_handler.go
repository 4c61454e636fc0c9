package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-backoffice/internal/application/dto"
	"github.com/tu-usuario/pos-backoffice/internal/application/inventory"
	"github.com/tu-usuario/pos-backoffice/internal/domain/repository"
)

// InventoryHandler maneja ajustes manuales de stock y el historial de auditoría.
type InventoryHandler struct {
	adjuster *inventory.Adjuster
}

func NewInventoryHandler(adjuster *inventory.Adjuster) *InventoryHandler {
	return &InventoryHandler{adjuster: adjuster}
}

// AdjustStock godoc
// @Summary      Ajustar stock de un producto
// @Description  Delta negativo descuenta stock, positivo repone. Queda registrado en el historial.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "Ajuste"
// @Success      200   {object}  dto.AdjustStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	newQty, err := h.adjuster.AdjustStock(c.Context(), in.ProductID, in.Delta, in.Note)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.AdjustStockResponse{ProductID: in.ProductID, NewQuantity: newQty})
}

// ListAdjustments godoc
// @Summary      Historial de ajustes de inventario
// @Tags         inventory
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        from        query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to          query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        limit       query  int     false  "Límite"  default(50)
// @Success      200  {array}  dto.AdjustmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [get]
func (h *InventoryHandler) ListAdjustments(c *fiber.Ctx) error {
	var in dto.AdjustmentListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}

	filter := repository.AdjustmentFilter{ProductID: in.ProductID, Limit: in.Limit}
	var err error
	if filter.From, err = parseDayParam(in.From); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fecha 'from' inválida, use YYYY-MM-DD"})
	}
	if filter.To, err = parseDayParam(in.To); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fecha 'to' inválida, use YYYY-MM-DD"})
	}

	adjs, err := h.adjuster.ListAdjustments(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}

	out := make([]dto.AdjustmentResponse, 0, len(adjs))
	for _, a := range adjs {
		out = append(out, dto.AdjustmentResponse{
			ID:               a.ID,
			ProductID:        a.ProductID,
			PreviousQuantity: a.PreviousQuantity,
			NewQuantity:      a.NewQuantity,
			Delta:            a.Delta,
			Reason:           a.Reason,
			Note:             a.Note,
			Reference:        a.Reference,
			CreatedAt:        a.CreatedAt,
		})
	}
	return c.JSON(out)
}

// parseDayParam interpreta un query param de fecha opcional en formato YYYY-MM-DD.
func parseDayParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
