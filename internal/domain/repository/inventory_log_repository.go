package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
)

// AdjustmentFilter criterios para consultar el historial de ajustes.
type AdjustmentFilter struct {
	ProductID string
	From      *time.Time
	To        *time.Time
	Limit     int
}

// InventoryLogRepository define el puerto del registro de auditoría de stock.
// Solo inserción y lectura: los registros nunca se mutan.
type InventoryLogRepository interface {
	Create(ctx context.Context, adj *entity.InventoryAdjustment) error
	List(ctx context.Context, filter AdjustmentFilter) ([]*entity.InventoryAdjustment, error)
}
