package sales

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-backoffice/internal/application/dto"
	"github.com/tu-usuario/pos-backoffice/internal/domain"
	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
	"github.com/tu-usuario/pos-backoffice/internal/domain/money"
	"github.com/tu-usuario/pos-backoffice/internal/domain/repository"
)

// SubmitSaleUseCase coordina el registro de una venta: valida el carrito,
// congela precios, calcula totales, obtiene el número de factura y ejecuta los
// descuentos de stock y la escritura del libro de ventas en una sola transacción.
// Cualquier falla dentro del commit scope revierte todo: ningún lector observa
// una venta a medio aplicar.
type SubmitSaleUseCase struct {
	txRunner      SaleTxRunner
	adjuster      StockAdjuster
	invoicePrefix string
}

// NewSubmitSaleUseCase construye el caso de uso. invoicePrefix vacío usa "INV".
func NewSubmitSaleUseCase(txRunner SaleTxRunner, adjuster StockAdjuster, invoicePrefix string) *SubmitSaleUseCase {
	if invoicePrefix == "" {
		invoicePrefix = "INV"
	}
	return &SubmitSaleUseCase{
		txRunner:      txRunner,
		adjuster:      adjuster,
		invoicePrefix: invoicePrefix,
	}
}

// SubmitSale registra una venta. La validación del request ocurre antes de
// cualquier mutación; el resto viaja dentro de la transacción.
func (uc *SubmitSaleUseCase) SubmitSale(ctx context.Context, in dto.SubmitSaleRequest) (*dto.SubmitSaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, &domain.ValidationError{Field: "items", Reason: "el carrito está vacío"}
	}
	for i, line := range in.Items {
		if line.ProductID == "" {
			return nil, &domain.ValidationError{Field: fmt.Sprintf("items[%d].product_id", i), Reason: "requerido"}
		}
		if line.Quantity <= 0 {
			return nil, &domain.ValidationError{Field: fmt.Sprintf("items[%d].quantity", i), Reason: "debe ser mayor que cero"}
		}
	}
	if in.Discount.LessThan(decimal.Zero) {
		return nil, &domain.ValidationError{Field: "discount", Reason: "no puede ser negativo"}
	}
	if in.TaxRatePct.LessThan(decimal.Zero) || in.TaxRatePct.GreaterThan(decimal.NewFromInt(100)) {
		return nil, &domain.ValidationError{Field: "tax_rate_pct", Reason: "debe estar entre 0 y 100"}
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = entity.PaymentMethodCash
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, &domain.ValidationError{Field: "payment_method", Reason: "método de pago desconocido"}
	}

	now := time.Now()
	saleID := uuid.New().String()
	var resp *dto.SubmitSaleResponse

	err := uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		logRepo repository.InventoryLogRepository,
		saleRepo repository.SaleRepository,
		seqRepo repository.InvoiceSequenceRepository,
	) error {
		// Bloquear los productos en orden determinista de ID: dos carritos
		// concurrentes sobre los mismos productos no pueden abrazarse.
		lockOrder := make([]string, 0, len(in.Items))
		seen := make(map[string]bool, len(in.Items))
		for _, line := range in.Items {
			if !seen[line.ProductID] {
				seen[line.ProductID] = true
				lockOrder = append(lockOrder, line.ProductID)
			}
		}
		sort.Strings(lockOrder)

		productsByID := make(map[string]*entity.Product, len(lockOrder))
		for _, id := range lockOrder {
			product, err := productRepo.GetForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if product == nil {
				return &domain.NotFoundError{Resource: "product", ID: id}
			}
			productsByID[id] = product
		}

		// Instantánea de precios y totales. El redondeo se aplica una sola
		// vez al cierre de cada total monetario, no por línea.
		items := make([]*entity.SaleItem, 0, len(in.Items))
		var totalAmount decimal.Decimal
		for _, line := range in.Items {
			product := productsByID[line.ProductID]
			unitPrice := product.Price
			lineTotal := unitPrice.Mul(decimal.NewFromInt(line.Quantity))
			totalAmount = totalAmount.Add(lineTotal)
			items = append(items, &entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    saleID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: unitPrice,
				LineTotal: lineTotal,
			})
		}
		totalAmount = money.Round2(totalAmount)
		subtotal := money.Subtotal(totalAmount, in.Discount)
		tax := money.TaxFor(subtotal, in.TaxRatePct)
		finalAmount := money.Round2(subtotal.Add(tax))

		// Número de factura: consecutivo persistido del día, dentro de la
		// misma transacción (único por construcción).
		seq, err := seqRepo.Next(ctx, now)
		if err != nil {
			return err
		}
		invoiceNumber := fmt.Sprintf("%s-%s-%04d", uc.invoicePrefix, now.Format("20060102"), seq)

		// Descuento de stock línea por línea vía el ajustador (reason = sale).
		// Un stock insuficiente aborta toda la transacción: ninguna línea queda
		// descontada y no existe fila de venta.
		for _, line := range in.Items {
			if _, err := uc.adjuster.ApplyDeltaInTx(ctx, productRepo, logRepo,
				line.ProductID, -line.Quantity, entity.AdjustmentReasonSale, "", saleID, now); err != nil {
				return err
			}
		}

		sale := &entity.Sale{
			ID:            saleID,
			InvoiceNumber: invoiceNumber,
			CustomerName:  in.CustomerName,
			CustomerPhone: in.CustomerPhone,
			TotalAmount:   totalAmount,
			Discount:      in.Discount,
			Tax:           tax,
			FinalAmount:   finalAmount,
			PaymentMethod: in.PaymentMethod,
			UserID:        in.UserID,
			CreatedAt:     now,
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		for _, item := range items {
			if err := saleRepo.CreateItem(ctx, item); err != nil {
				return err
			}
		}

		resp = &dto.SubmitSaleResponse{
			SaleID:        saleID,
			InvoiceNumber: invoiceNumber,
			FinalAmount:   finalAmount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
