package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Quantity se muta únicamente a través del ajustador de inventario;
// CategoryID es una referencia débil (puede quedar en NULL si se elimina la categoría).
type Product struct {
	ID          string
	Barcode     string // opcional, único entre productos cuando no es vacío
	Name        string
	Description string
	CategoryID  string          // vacío = sin categoría
	Price       decimal.Decimal // precio de venta
	CostPrice   decimal.Decimal
	Quantity    int64
	MinQuantity int64 // umbral de stock bajo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LowStock indica si el producto alcanzó su umbral mínimo.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.MinQuantity
}
