package sales

import (
	"context"
	"time"

	"github.com/tu-usuario/pos-backoffice/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción que incluye los
// repos del coordinador: catálogo, auditoría de stock, libro de ventas y
// consecutivo de factura. Es el commit scope de una venta: todo o nada.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		logRepo repository.InventoryLogRepository,
		saleRepo repository.SaleRepository,
		seqRepo repository.InvoiceSequenceRepository,
	) error) error
}

// StockAdjuster integra el coordinador de ventas con el ajustador de inventario.
// ApplyDeltaInTx ejecuta el descuento usando los repositorios del caller (misma
// transacción); si devuelve error (ej: stock insuficiente), el caller hace rollback.
type StockAdjuster interface {
	ApplyDeltaInTx(
		ctx context.Context,
		productRepo repository.ProductRepository,
		logRepo repository.InventoryLogRepository,
		productID string,
		delta int64,
		reason, note, reference string,
		now time.Time,
	) (int64, error)
}
