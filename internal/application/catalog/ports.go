package catalog

import (
	"context"

	"github.com/tu-usuario/pos-backoffice/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con repos de catálogo.
// Usado por la eliminación de categorías para que el cascade-null sobre los
// productos y el borrado viajen juntos.
type TxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
	) error) error
}
