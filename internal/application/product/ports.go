package product

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad de la creación:
// producto, inventario y asiento del libro se confirman juntos o ninguno.
// Una violación de unicidad detectada al confirmar se traduce a
// domain.ErrDuplicateSKU, el mismo error que produce el pre-chequeo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
		ledgerRepo repository.LedgerRepository,
		warehouseRepo repository.WarehouseRepository,
	) error) error
}
