package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible identificado por SKU.
// El SKU es único bajo comparación case-insensitive (índice sobre lower(sku));
// Price es decimal exacto, nunca float binario. El stock vive en Inventory,
// una fila por bodega (relación uno a muchos).
type Product struct {
	ID        string
	SKU       string // recortado y normalizado NFC; se conserva la capitalización original
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
