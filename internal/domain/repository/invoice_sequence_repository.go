package repository

import (
	"context"
	"time"
)

// InvoiceSequenceRepository define el puerto del contador persistido de facturas.
// Next incrementa y devuelve el consecutivo del día de forma atómica; llamado
// dentro de la transacción de la venta para que un rollback no deje huecos
// visibles fuera de ella.
type InvoiceSequenceRepository interface {
	Next(ctx context.Context, day time.Time) (int64, error)
}
