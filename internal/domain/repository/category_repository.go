package repository

import (
	"context"

	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	List(ctx context.Context) ([]*entity.Category, error)
	// DeleteAndDetachProducts pone en NULL la referencia de los productos
	// afectados y elimina la categoría, todo en una sola transacción.
	// Devuelve cuántos productos quedaron sin categoría.
	DeleteAndDetachProducts(ctx context.Context, id string) (int64, error)
}
