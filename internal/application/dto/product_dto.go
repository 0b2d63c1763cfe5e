package dto

import "encoding/json"

// CreateProductRequest entrada para crear un producto con su stock inicial.
// Price e InitialQuantity llegan como json.RawMessage para validar desde el
// literal original de la petición (string o número), sin pasar por float64:
// un float binario pre-redondeado introduce derivas de centavos en dinero.
type CreateProductRequest struct {
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Price           json.RawMessage `json:"price"`
	WarehouseID     string          `json:"warehouse_id"`
	InitialQuantity json.RawMessage `json:"initial_quantity"`
}

// ProductCreatedResponse salida de la creación de un producto.
type ProductCreatedResponse struct {
	ProductID string `json:"product_id"`
	Status    string `json:"status"`
}
