package product

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// CreateProductCommand comando tipado y saneado para crear un producto.
// CanonicalSKU es la forma usada en toda comparación de unicidad:
// recortado, normalizado NFC y en minúsculas, igual que lower(sku) en la BD.
type CreateProductCommand struct {
	Name            string
	SKU             string
	CanonicalSKU    string
	Price           decimal.Decimal
	WarehouseID     string
	InitialQuantity int64
}

// CanonicalSKU devuelve la forma canónica de un SKU para comparaciones.
func CanonicalSKU(sku string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(sku)))
}

// ValidateCreate convierte la petición sin confiar en nada en un comando tipado,
// o en un *domain.ValidationError con TODOS los campos inválidos, no solo el
// primero. Sin efectos secundarios: misma entrada, mismo resultado.
func ValidateCreate(in dto.CreateProductRequest) (CreateProductCommand, error) {
	verr := &domain.ValidationError{}
	cmd := CreateProductCommand{}

	name := norm.NFC.String(strings.TrimSpace(in.Name))
	if name == "" {
		verr.Add("name", "es requerido")
	}
	cmd.Name = name

	sku := norm.NFC.String(strings.TrimSpace(in.SKU))
	if sku == "" {
		verr.Add("sku", "es requerido")
	}
	cmd.SKU = sku
	cmd.CanonicalSKU = strings.ToLower(sku)

	warehouseID := strings.TrimSpace(in.WarehouseID)
	if warehouseID == "" {
		verr.Add("warehouse_id", "es requerido")
	}
	cmd.WarehouseID = warehouseID

	// Price se parsea desde el literal del body (string o número JSON),
	// nunca desde un float64 intermedio.
	if len(in.Price) == 0 {
		verr.Add("price", "es requerido")
	} else if lit, ok := numberLiteral(in.Price); !ok {
		verr.Add("price", "debe ser un número decimal")
	} else if price, err := decimal.NewFromString(lit); err != nil {
		verr.Add("price", "debe ser un número decimal")
	} else if price.IsNegative() {
		verr.Add("price", "debe ser mayor o igual a 0")
	} else {
		cmd.Price = price
	}

	// InitialQuantity es opcional (default 0); entero no negativo.
	// ParseInt rechaza fraccionarios y no numéricos de una sola vez.
	if len(in.InitialQuantity) > 0 {
		lit, ok := numberLiteral(in.InitialQuantity)
		if !ok {
			verr.Add("initial_quantity", "debe ser un entero no negativo")
		} else if qty, err := strconv.ParseInt(lit, 10, 64); err != nil {
			verr.Add("initial_quantity", "debe ser un entero no negativo")
		} else if qty < 0 {
			verr.Add("initial_quantity", "no puede ser negativo")
		} else {
			cmd.InitialQuantity = qty
		}
	}

	if verr.HasErrors() {
		return CreateProductCommand{}, verr
	}
	return cmd, nil
}

// numberLiteral extrae el literal numérico de un valor JSON crudo.
// Acepta números (19.99) y strings ("19.99"); rechaza null y vacíos.
func numberLiteral(raw json.RawMessage) (string, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return "", false
	}
	if s[0] == '"' {
		var unquoted string
		if err := json.Unmarshal(raw, &unquoted); err != nil {
			return "", false
		}
		s = strings.TrimSpace(unquoted)
		if s == "" {
			return "", false
		}
	}
	return s, true
}
