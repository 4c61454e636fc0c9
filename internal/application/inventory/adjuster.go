package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pos-backoffice/internal/domain"
	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
	"github.com/tu-usuario/pos-backoffice/internal/domain/repository"
)

// Adjuster es el único camino autorizado para mutar products.quantity.
// Cada mutación bloquea la fila del producto (SELECT FOR UPDATE), evalúa la
// no-negatividad sobre la cantidad leída bajo ese bloqueo y agrega el registro
// de auditoría en la misma unidad atómica.
//
// AllowBackorder relaja la no-negatividad (venta sobre pedido); por defecto
// la política es rechazo estricto.
type Adjuster struct {
	txRunner       TxRunner
	logRepo        repository.InventoryLogRepository
	allowBackorder bool
}

// NewAdjuster construye el ajustador. logRepo se usa solo para consultas de
// historial fuera de transacción.
func NewAdjuster(txRunner TxRunner, logRepo repository.InventoryLogRepository, allowBackorder bool) *Adjuster {
	return &Adjuster{
		txRunner:       txRunner,
		logRepo:        logRepo,
		allowBackorder: allowBackorder,
	}
}

// ApplyDeltaInTx aplica un delta de stock usando los repositorios del caller
// (misma transacción). Bloquea la fila, verifica que la nueva cantidad no sea
// negativa, escribe la cantidad y agrega el registro de auditoría.
// reference referencia la venta cuando reason == sale.
// Devuelve la cantidad resultante.
func (a *Adjuster) ApplyDeltaInTx(
	ctx context.Context,
	productRepo repository.ProductRepository,
	logRepo repository.InventoryLogRepository,
	productID string,
	delta int64,
	reason, note, reference string,
	now time.Time,
) (int64, error) {
	product, err := productRepo.GetForUpdate(ctx, productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, &domain.NotFoundError{Resource: "product", ID: productID}
	}

	newQuantity := product.Quantity + delta
	if newQuantity < 0 && !a.allowBackorder {
		return 0, &domain.InsufficientStockError{
			ProductID: productID,
			Requested: -delta,
			Available: product.Quantity,
		}
	}

	if err := productRepo.UpdateQuantity(ctx, productID, newQuantity); err != nil {
		return 0, err
	}
	adj := &entity.InventoryAdjustment{
		ID:               uuid.New().String(),
		ProductID:        productID,
		PreviousQuantity: product.Quantity,
		NewQuantity:      newQuantity,
		Delta:            delta,
		Reason:           reason,
		Note:             note,
		Reference:        reference,
		CreatedAt:        now,
	}
	if err := logRepo.Create(ctx, adj); err != nil {
		return 0, err
	}
	return newQuantity, nil
}

// AdjustStock aplica una corrección manual de stock en su propia transacción
// (reason = manual). Delta negativo descuenta, positivo repone.
func (a *Adjuster) AdjustStock(ctx context.Context, productID string, delta int64, note string) (int64, error) {
	if productID == "" {
		return 0, &domain.ValidationError{Field: "product_id", Reason: "requerido"}
	}
	if delta == 0 {
		return 0, &domain.ValidationError{Field: "delta", Reason: "no puede ser cero"}
	}

	var newQuantity int64
	err := a.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		logRepo repository.InventoryLogRepository,
	) error {
		var err error
		newQuantity, err = a.ApplyDeltaInTx(ctx, productRepo, logRepo,
			productID, delta, entity.AdjustmentReasonManual, note, "", time.Now())
		return err
	})
	if err != nil {
		return 0, err
	}
	return newQuantity, nil
}

// ListAdjustments consulta el historial de auditoría (solo lectura, fuera de tx).
func (a *Adjuster) ListAdjustments(ctx context.Context, filter repository.AdjustmentFilter) ([]*entity.InventoryAdjustment, error) {
	return a.logRepo.List(ctx, filter)
}
