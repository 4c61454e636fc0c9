package repository

import (
	"context"

	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
)

// ProductFilter criterios de búsqueda para listar productos.
type ProductFilter struct {
	Search     string // substring sobre nombre, barcode o descripción
	CategoryID string
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateQuantity es de uso exclusivo del ajustador de inventario; ningún otro
// camino escribe products.quantity.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	// GetForUpdate lee el producto bloqueando la fila (SELECT FOR UPDATE);
	// solo tiene sentido dentro de una transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateQuantity(ctx context.Context, productID string, quantity int64) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	ListLowStock(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
	// HasSaleReferences indica si existen líneas de venta que referencian al producto.
	HasSaleReferences(ctx context.Context, id string) (bool, error)
}
