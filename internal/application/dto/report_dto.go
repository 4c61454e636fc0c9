package dto

import "github.com/shopspring/decimal"

// PaymentMethodSummaryDTO agregado de ventas por método de pago.
type PaymentMethodSummaryDTO struct {
	PaymentMethod string          `json:"payment_method"`
	SaleCount     int64           `json:"sale_count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	TotalTax      decimal.Decimal `json:"total_tax"`
	FinalAmount   decimal.Decimal `json:"final_amount"`
}

// SalesReportResponse reporte de un rango de fechas.
type SalesReportResponse struct {
	From      string                    `json:"from"`
	To        string                    `json:"to"`
	ByPayment []PaymentMethodSummaryDTO `json:"by_payment_method"`
}

// TodayStatsResponse ventas del día en curso.
type TodayStatsResponse struct {
	Count       int64           `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
