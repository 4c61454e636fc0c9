package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest una línea del carrito: producto y cantidad solicitada.
type SaleLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// SubmitSaleRequest body para POST /api/sales. Discount es un monto absoluto;
// TaxRatePct una tasa porcentual (15 = 15%) aplicada sobre el subtotal.
type SubmitSaleRequest struct {
	Items         []SaleLineRequest `json:"items"`
	CustomerName  string            `json:"customer_name"`
	CustomerPhone string            `json:"customer_phone"`
	Discount      decimal.Decimal   `json:"discount"`
	TaxRatePct    decimal.Decimal   `json:"tax_rate_pct"`
	PaymentMethod string            `json:"payment_method"`
	UserID        string            `json:"user_id"`
}

// SaleItemResponse una línea de venta registrada con su precio instantáneo.
type SaleItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// SaleResponse salida de una venta registrada.
type SaleResponse struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	CustomerName  string             `json:"customer_name,omitempty"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	Discount      decimal.Decimal    `json:"discount"`
	Tax           decimal.Decimal    `json:"tax"`
	FinalAmount   decimal.Decimal    `json:"final_amount"`
	PaymentMethod string             `json:"payment_method"`
	UserID        string             `json:"user_id,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	Items         []SaleItemResponse `json:"items,omitempty"`
}

// SubmitSaleResponse resultado mínimo de una venta confirmada.
type SubmitSaleResponse struct {
	SaleID        string          `json:"sale_id"`
	InvoiceNumber string          `json:"invoice_number"`
	FinalAmount   decimal.Decimal `json:"final_amount"`
}

// SaleListRequest filtros para listar ventas.
type SaleListRequest struct {
	From     string `query:"from"` // YYYY-MM-DD, inclusive
	To       string `query:"to"`   // YYYY-MM-DD, inclusive
	Customer string `query:"customer"`
	PageRequest
}
