package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// InventoryRepository define el puerto para consultar/actualizar inventario
// por producto+bodega. Usado dentro de transacciones para garantizar consistencia.
type InventoryRepository interface {
	Get(ctx context.Context, productID, warehouseID string) (*entity.Inventory, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); si no existe
	// devuelve una fila en cero sin bloquear (el Upsert posterior la crea).
	GetForUpdate(ctx context.Context, productID, warehouseID string) (*entity.Inventory, error)
	Upsert(ctx context.Context, inv *entity.Inventory) error
}
