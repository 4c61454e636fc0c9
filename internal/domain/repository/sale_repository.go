package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
)

// SaleFilter criterios para listar ventas.
type SaleFilter struct {
	From     *time.Time // inclusive, sobre la fecha de created_at
	To       *time.Time // inclusive
	Customer string     // substring sobre el nombre del cliente
	Limit    int
	Offset   int
}

// SaleRepository define el puerto de persistencia para el libro de ventas.
// Las escrituras ocurren únicamente dentro de la transacción del coordinador;
// no existe camino de actualización ni borrado (ventas inmutables).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	CreateItem(ctx context.Context, item *entity.SaleItem) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	GetItems(ctx context.Context, saleID string) ([]*entity.SaleItem, error)
	List(ctx context.Context, filter SaleFilter) ([]*entity.Sale, error)
}
