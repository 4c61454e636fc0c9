package entity

import "time"

// Category representa una categoría de productos. Name es único.
// Los productos la referencian por ID sin ownership: al eliminarla,
// la referencia en los productos afectados queda en NULL (misma transacción).
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
