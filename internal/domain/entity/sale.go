package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PaymentMethodCash     = "cash"
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
)

// ValidPaymentMethod verifica que el método de pago sea uno de los aceptados.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return true
	}
	return false
}

// Sale representa la cabecera de una venta registrada. Inmutable una vez
// confirmada: el núcleo no expone actualización ni eliminación.
// Invariantes: FinalAmount == round2(max(0, TotalAmount - Discount) + Tax);
// TotalAmount == Σ(item.LineTotal).
type Sale struct {
	ID            string
	InvoiceNumber string // identificador de factura, único global
	CustomerName  string
	CustomerPhone string
	TotalAmount   decimal.Decimal
	Discount      decimal.Decimal
	Tax           decimal.Decimal
	FinalAmount   decimal.Decimal
	PaymentMethod string
	UserID        string
	CreatedAt     time.Time
}

// SaleItem representa una línea de venta. UnitPrice es una instantánea del
// precio del producto al momento de la venta; cambios posteriores del catálogo
// no la afectan.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}
