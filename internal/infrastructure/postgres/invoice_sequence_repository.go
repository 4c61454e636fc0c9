package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/pos-backoffice/internal/domain/repository"
)

var _ repository.InvoiceSequenceRepository = (*InvoiceSequenceRepo)(nil)

// InvoiceSequenceRepo contador persistido de facturas por día.
// El upsert incrementa y devuelve el consecutivo en una sola sentencia: dos
// transacciones concurrentes sobre el mismo día se serializan en la fila del
// contador, de modo que el número asignado es único por construcción.
type InvoiceSequenceRepo struct {
	q Querier
}

// NewInvoiceSequenceRepository construye el adaptador del consecutivo. Pasar pool o tx (Querier).
func NewInvoiceSequenceRepository(q Querier) *InvoiceSequenceRepo {
	return &InvoiceSequenceRepo{q: q}
}

// Next incrementa y devuelve el consecutivo del día indicado.
func (r *InvoiceSequenceRepo) Next(ctx context.Context, day time.Time) (int64, error) {
	query := `
		INSERT INTO invoice_sequences (day, last_seq)
		VALUES ($1::date, 1)
		ON CONFLICT (day)
		DO UPDATE SET last_seq = invoice_sequences.last_seq + 1
		RETURNING last_seq`
	var seq int64
	if err := r.q.QueryRow(ctx, query, day).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next invoice sequence: %w", err)
	}
	return seq, nil
}
