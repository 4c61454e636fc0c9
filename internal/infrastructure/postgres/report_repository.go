package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-backoffice/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes de ventas.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// SalesByPaymentMethod agrega ventas por método de pago en un rango de fechas
// inclusivo (por día).
func (r *ReportRepo) SalesByPaymentMethod(
	ctx context.Context,
	from, to time.Time,
) ([]repository.PaymentMethodSummary, error) {
	const query = `
	SELECT
	    payment_method,
	    COUNT(*)           AS sale_count,
	    SUM(total_amount)  AS total_amount,
	    SUM(discount)      AS total_discount,
	    SUM(tax)           AS total_tax,
	    SUM(final_amount)  AS final_amount
	FROM sales
	WHERE created_at::date BETWEEN $1::date AND $2::date
	GROUP BY payment_method
	ORDER BY final_amount DESC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("reports.SalesByPaymentMethod: %w", err)
	}
	defer rows.Close()

	var results []repository.PaymentMethodSummary
	for rows.Next() {
		var row repository.PaymentMethodSummary
		if err := rows.Scan(
			&row.PaymentMethod,
			&row.SaleCount,
			&row.TotalAmount,
			&row.TotalDiscount,
			&row.TotalTax,
			&row.FinalAmount,
		); err != nil {
			return nil, fmt.Errorf("reports.SalesByPaymentMethod scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TodayStats devuelve cantidad de ventas y recaudo del día indicado.
func (r *ReportRepo) TodayStats(ctx context.Context, day time.Time) (*repository.DailySalesStats, error) {
	const query = `
	SELECT COUNT(*), COALESCE(SUM(final_amount), 0)
	FROM sales
	WHERE created_at::date = $1::date`

	var stats repository.DailySalesStats
	err := r.pool.QueryRow(ctx, query, day).Scan(&stats.Count, &stats.TotalAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &repository.DailySalesStats{TotalAmount: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("reports.TodayStats: %w", err)
	}
	return &stats, nil
}
