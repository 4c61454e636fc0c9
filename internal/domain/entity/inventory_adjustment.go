package entity

import "time"

// Razones de ajuste de inventario.
const (
	AdjustmentReasonSale   = "sale"   // descuento por venta (solo coordinador de ventas)
	AdjustmentReasonManual = "manual" // corrección directa de stock
)

// InventoryAdjustment es el registro de auditoría de cada mutación de stock.
// Append-only: nunca se actualiza ni se elimina.
type InventoryAdjustment struct {
	ID               string
	ProductID        string
	PreviousQuantity int64
	NewQuantity      int64
	Delta            int64
	Reason           string
	Note             string
	Reference        string // ID de la venta cuando Reason == sale
	CreatedAt        time.Time
}
