package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del libro de inventario sobre PostgreSQL (usable con pool o tx).
// Solo inserta y suma: los asientos nunca se actualizan ni se borran.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador del libro. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Append inserta un asiento. created_at lo asigna la BD (default now()).
func (r *LedgerRepo) Append(ctx context.Context, entry *entity.LedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_ledger (id, product_id, warehouse_id, quantity_delta, reason)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.ProductID, entry.WarehouseID, entry.QuantityDelta, entry.Reason,
	)
	if err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

// SumDeltas suma los deltas del par (producto, bodega) para conciliación.
func (r *LedgerRepo) SumDeltas(ctx context.Context, productID, warehouseID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(quantity_delta), 0)
		FROM inventory_ledger WHERE product_id = $1 AND warehouse_id = $2`
	var total int64
	if err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum ledger deltas: %w", err)
	}
	return total, nil
}
