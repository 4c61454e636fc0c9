package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethodSummary agregado de ventas por método de pago en un rango de fechas.
type PaymentMethodSummary struct {
	PaymentMethod string
	SaleCount     int64
	TotalAmount   decimal.Decimal
	TotalDiscount decimal.Decimal
	TotalTax      decimal.Decimal
	FinalAmount   decimal.Decimal
}

// DailySalesStats ventas del día: cantidad de facturas y recaudo.
type DailySalesStats struct {
	Count       int64
	TotalAmount decimal.Decimal
}

// ReportRepository consultas de solo lectura para reportes de ventas.
type ReportRepository interface {
	SalesByPaymentMethod(ctx context.Context, from, to time.Time) ([]PaymentMethodSummary, error)
	TodayStats(ctx context.Context, day time.Time) (*DailySalesStats, error)
}
