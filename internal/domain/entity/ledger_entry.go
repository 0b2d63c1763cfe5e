package entity

import "time"

// Motivos de asiento en el libro de inventario.
const (
	LedgerReasonInitialStock = "initial_stock"
)

// LedgerEntry asiento del libro de inventario: registro append-only de un
// cambio de cantidad. Nunca se actualiza ni se borra; CreatedAt lo asigna la
// base de datos al insertar. La suma de QuantityDelta por (producto, bodega)
// debe cuadrar con Inventory.Quantity (invariante de conciliación).
type LedgerEntry struct {
	ID            string
	ProductID     string
	WarehouseID   string
	QuantityDelta int64 // con signo; nunca cero
	Reason        string
	CreatedAt     time.Time
}
