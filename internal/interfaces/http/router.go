package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/product"
	"github.com/jhoicas/Catalogo-api/internal/application/warehouse"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateProductUC *product.CreateProductUseCase
	WarehouseUC     *warehouse.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.CreateProductUC)
	products.Post("/", productHandler.Create)

	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
}
