package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
	"github.com/tu-usuario/pos-backoffice/internal/domain/repository"
)

var _ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)

// InventoryLogRepo implementación de InventoryLogRepository sobre PostgreSQL
// (usable con pool o tx). Append-only.
type InventoryLogRepo struct {
	q Querier
}

// NewInventoryLogRepository construye el adaptador de auditoría de stock. Pasar pool o tx (Querier).
func NewInventoryLogRepository(q Querier) *InventoryLogRepo {
	return &InventoryLogRepo{q: q}
}

// Create agrega un registro de ajuste al historial.
func (r *InventoryLogRepo) Create(ctx context.Context, adj *entity.InventoryAdjustment) error {
	query := `
		INSERT INTO inventory_log (id, product_id, previous_quantity, new_quantity, delta, reason, note, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, '')::uuid, $9)`
	_, err := r.q.Exec(ctx, query,
		adj.ID, adj.ProductID, adj.PreviousQuantity, adj.NewQuantity, adj.Delta,
		adj.Reason, adj.Note, adj.Reference, adj.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory adjustment: %w", err)
	}
	return nil
}

// List consulta el historial con filtros opcionales, más reciente primero.
func (r *InventoryLogRepo) List(ctx context.Context, filter repository.AdjustmentFilter) ([]*entity.InventoryAdjustment, error) {
	query := `
		SELECT id, product_id, previous_quantity, new_quantity, delta, reason, note, COALESCE(reference::text, ''), created_at
		FROM inventory_log`
	var args []any
	var conditions []string
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		conditions = append(conditions, fmt.Sprintf("product_id = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("created_at::date >= $%d::date", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("created_at::date <= $%d::date", len(args)))
	}
	for i, c := range conditions {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY created_at DESC"
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory adjustments: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryAdjustment
	for rows.Next() {
		var a entity.InventoryAdjustment
		if err := rows.Scan(&a.ID, &a.ProductID, &a.PreviousQuantity, &a.NewQuantity, &a.Delta,
			&a.Reason, &a.Note, &a.Reference, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory adjustment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
