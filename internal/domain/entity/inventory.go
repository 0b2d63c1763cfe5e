package entity

import "time"

// Inventory representa la cantidad de un producto en una bodega.
// Clave (ProductID, WarehouseID): a lo sumo una fila por par.
// Quantity es un entero no negativo (unidades fraccionarias fuera de alcance).
type Inventory struct {
	ProductID   string
	WarehouseID string
	Quantity    int64
	UpdatedAt   time.Time
}
