package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetBySKU recibe el SKU canónico (recortado, NFC, minúsculas) y compara
// contra lower(sku); es el pre-chequeo de unicidad dentro de la transacción.
// Create traduce la violación del índice único a domain.ErrDuplicateSKU.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, canonicalSKU string) (*entity.Product, error)
}
