package sales

import (
	"context"
	"time"

	"github.com/tu-usuario/pos-backoffice/internal/application/dto"
	"github.com/tu-usuario/pos-backoffice/internal/domain"
	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
	"github.com/tu-usuario/pos-backoffice/internal/domain/repository"
)

// SaleQueryUseCase consultas de solo lectura sobre el libro de ventas.
type SaleQueryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewSaleQueryUseCase construye el caso de uso de consultas.
func NewSaleQueryUseCase(saleRepo repository.SaleRepository) *SaleQueryUseCase {
	return &SaleQueryUseCase{saleRepo: saleRepo}
}

// GetSale obtiene una venta con sus líneas.
func (uc *SaleQueryUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, &domain.NotFoundError{Resource: "sale", ID: id}
	}
	items, err := uc.saleRepo.GetItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items), nil
}

// ListSales lista ventas filtradas por rango de fechas (inclusive) y cliente.
func (uc *SaleQueryUseCase) ListSales(ctx context.Context, in dto.SaleListRequest) ([]dto.SaleResponse, error) {
	in.DefaultPage()
	filter := repository.SaleFilter{
		Customer: in.Customer,
		Limit:    in.Limit,
		Offset:   in.Offset,
	}
	var err error
	if filter.From, err = parseDay(in.From, "from"); err != nil {
		return nil, err
	}
	if filter.To, err = parseDay(in.To, "to"); err != nil {
		return nil, err
	}

	sales, err := uc.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toSaleResponse(s, nil))
	}
	return out, nil
}

// parseDay interpreta una fecha YYYY-MM-DD opcional.
func parseDay(s, field string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, &domain.ValidationError{Field: field, Reason: "fecha inválida, se espera YYYY-MM-DD"}
	}
	return &t, nil
}

func toSaleResponse(sale *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            sale.ID,
		InvoiceNumber: sale.InvoiceNumber,
		CustomerName:  sale.CustomerName,
		CustomerPhone: sale.CustomerPhone,
		TotalAmount:   sale.TotalAmount,
		Discount:      sale.Discount,
		Tax:           sale.Tax,
		FinalAmount:   sale.FinalAmount,
		PaymentMethod: sale.PaymentMethod,
		UserID:        sale.UserID,
		CreatedAt:     sale.CreatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
		})
	}
	return resp
}
