package product

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// CreateProductUseCase crea un producto con su stock inicial en una bodega
// dentro de UNA sola transacción: pre-chequeo de SKU, insert del producto,
// upsert de inventario y asiento en el libro. Cualquier fallo en cualquier
// paso revierte todo; ningún lector ve estado parcial. El árbitro final de
// unicidad es el índice único de la BD, no el pre-chequeo.
type CreateProductUseCase struct {
	txRunner  TxRunner
	txTimeout time.Duration
}

// NewCreateProductUseCase construye el caso de uso. txTimeout acota cuánto
// tiempo puede permanecer abierta la transacción (0 = sin límite).
func NewCreateProductUseCase(txRunner TxRunner, txTimeout time.Duration) *CreateProductUseCase {
	return &CreateProductUseCase{txRunner: txRunner, txTimeout: txTimeout}
}

// Create valida la petición y crea el producto. La validación ocurre antes de
// abrir cualquier transacción: una entrada inválida nunca toca la BD.
func (uc *CreateProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductCreatedResponse, error) {
	cmd, err := ValidateCreate(in)
	if err != nil {
		return nil, err
	}
	return uc.CreateFromCommand(ctx, cmd)
}

// CreateFromCommand ejecuta la creación para un comando ya validado.
func (uc *CreateProductUseCase) CreateFromCommand(ctx context.Context, cmd CreateProductCommand) (*dto.ProductCreatedResponse, error) {
	if uc.txTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.txTimeout)
		defer cancel()
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		SKU:       cmd.SKU,
		Name:      cmd.Name,
		Price:     cmd.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
		ledgerRepo repository.LedgerRepository,
		warehouseRepo repository.WarehouseRepository,
	) error {
		wh, err := warehouseRepo.GetByID(ctx, cmd.WarehouseID)
		if err != nil {
			return err
		}
		if wh == nil {
			return domain.ErrWarehouseNotFound
		}

		// Pre-chequeo de unicidad dentro de la misma transacción. Estrecha la
		// ventana de carrera pero no la elimina: dos peticiones concurrentes
		// con el mismo SKU se resuelven en el índice único al confirmar.
		existing, err := productRepo.GetBySKU(ctx, cmd.CanonicalSKU)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateSKU
		}

		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}

		return applyStockDelta(ctx, invRepo, ledgerRepo,
			product.ID, cmd.WarehouseID, cmd.InitialQuantity,
			entity.LedgerReasonInitialStock, now)
	})
	if err != nil {
		return nil, err
	}

	return &dto.ProductCreatedResponse{ProductID: product.ID, Status: "created"}, nil
}

// applyStockDelta aplica un cambio de cantidad sobre el par (producto, bodega)
// dentro de la transacción en curso. Upsert aditivo: si ya existe fila para el
// par, la cantidad se suma en lugar de duplicar o fallar; GetForUpdate bloquea
// la fila para que escritores concurrentes del par serialicen sin perder
// updates. El asiento en el libro se escribe solo cuando hay cambio real.
func applyStockDelta(
	ctx context.Context,
	invRepo repository.InventoryRepository,
	ledgerRepo repository.LedgerRepository,
	productID, warehouseID string,
	delta int64,
	reason string,
	now time.Time,
) error {
	inv, err := invRepo.GetForUpdate(ctx, productID, warehouseID)
	if err != nil {
		return err
	}
	inv.Quantity += delta
	inv.UpdatedAt = now
	if err := invRepo.Upsert(ctx, inv); err != nil {
		return err
	}

	if delta > 0 {
		entry := &entity.LedgerEntry{
			ID:            uuid.New().String(),
			ProductID:     productID,
			WarehouseID:   warehouseID,
			QuantityDelta: delta,
			Reason:        reason,
		}
		if err := ledgerRepo.Append(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}
