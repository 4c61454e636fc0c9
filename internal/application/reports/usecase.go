package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/pos-backoffice/internal/application/dto"
	"github.com/tu-usuario/pos-backoffice/internal/domain"
	"github.com/tu-usuario/pos-backoffice/internal/domain/repository"
)

// ObjectCache cache opcional de objetos para los reportes (Redis en producción,
// no-op si no está configurado).
type ObjectCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, obj any, exp time.Duration) error
}

// Tiempo de vida corto: los reportes toleran quedarse unos segundos atrás,
// el núcleo transaccional nunca lee de aquí.
const cacheTTL = 60 * time.Second

// ReportUseCase reportes de ventas de solo lectura.
type ReportUseCase struct {
	repo  repository.ReportRepository
	cache ObjectCache
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(repo repository.ReportRepository, cache ObjectCache) *ReportUseCase {
	return &ReportUseCase{repo: repo, cache: cache}
}

// SalesReport agrega las ventas de un rango de fechas por método de pago.
func (uc *ReportUseCase) SalesReport(ctx context.Context, fromStr, toStr string) (*dto.SalesReportResponse, error) {
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return nil, &domain.ValidationError{Field: "from", Reason: "fecha inválida, se espera YYYY-MM-DD"}
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return nil, &domain.ValidationError{Field: "to", Reason: "fecha inválida, se espera YYYY-MM-DD"}
	}
	if to.Before(from) {
		return nil, &domain.ValidationError{Field: "to", Reason: "debe ser posterior o igual a from"}
	}

	key := fmt.Sprintf("reports:sales:%s:%s", fromStr, toStr)
	var cached dto.SalesReportResponse
	if hit, _ := uc.cache.Get(ctx, key, &cached); hit {
		return &cached, nil
	}

	rows, err := uc.repo.SalesByPaymentMethod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	resp := &dto.SalesReportResponse{
		From:      fromStr,
		To:        toStr,
		ByPayment: make([]dto.PaymentMethodSummaryDTO, 0, len(rows)),
	}
	for _, row := range rows {
		resp.ByPayment = append(resp.ByPayment, dto.PaymentMethodSummaryDTO{
			PaymentMethod: row.PaymentMethod,
			SaleCount:     row.SaleCount,
			TotalAmount:   row.TotalAmount,
			TotalDiscount: row.TotalDiscount,
			TotalTax:      row.TotalTax,
			FinalAmount:   row.FinalAmount,
		})
	}
	_ = uc.cache.Set(ctx, key, resp, cacheTTL)
	return resp, nil
}

// TodayStats devuelve cantidad de ventas y recaudo del día en curso.
func (uc *ReportUseCase) TodayStats(ctx context.Context) (*dto.TodayStatsResponse, error) {
	now := time.Now()
	key := "reports:today:" + now.Format("2006-01-02")
	var cached dto.TodayStatsResponse
	if hit, _ := uc.cache.Get(ctx, key, &cached); hit {
		return &cached, nil
	}

	stats, err := uc.repo.TodayStats(ctx, now)
	if err != nil {
		return nil, err
	}
	resp := &dto.TodayStatsResponse{
		Count:       stats.Count,
		TotalAmount: stats.TotalAmount,
	}
	_ = uc.cache.Set(ctx, key, resp, cacheTTL)
	return resp, nil
}
