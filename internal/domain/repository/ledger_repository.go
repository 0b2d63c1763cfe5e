package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// LedgerRepository define el puerto del libro de inventario (append-only).
// No expone update ni delete: los asientos son inmutables una vez insertados.
type LedgerRepository interface {
	Append(ctx context.Context, entry *entity.LedgerEntry) error
	// SumDeltas suma los deltas de un par (producto, bodega) para conciliación
	// contra Inventory.Quantity.
	SumDeltas(ctx context.Context, productID, warehouseID string) (int64, error)
}
