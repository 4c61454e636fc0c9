package dto

import "time"

// AdjustStockRequest body para POST /api/inventory/adjustments.
// Delta negativo descuenta stock, positivo repone.
type AdjustStockRequest struct {
	ProductID string `json:"product_id"`
	Delta     int64  `json:"delta"`
	Note      string `json:"note"`
}

// AdjustStockResponse resultado de un ajuste manual.
type AdjustStockResponse struct {
	ProductID   string `json:"product_id"`
	NewQuantity int64  `json:"new_quantity"`
}

// AdjustmentResponse un registro del historial de auditoría de stock.
type AdjustmentResponse struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"product_id"`
	PreviousQuantity int64     `json:"previous_quantity"`
	NewQuantity      int64     `json:"new_quantity"`
	Delta            int64     `json:"delta"`
	Reason           string    `json:"reason"`
	Note             string    `json:"note,omitempty"`
	Reference        string    `json:"reference,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// AdjustmentListRequest filtros para consultar el historial de ajustes.
type AdjustmentListRequest struct {
	ProductID string `query:"product_id"`
	From      string `query:"from"` // YYYY-MM-DD
	To        string `query:"to"`   // YYYY-MM-DD
	Limit     int    `query:"limit"`
}
