package product

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// validRequest petición completa y válida (ejemplo de referencia del servicio).
func validRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:            "Widget",
		SKU:             "WID-001",
		Price:           json.RawMessage(`"19.99"`),
		WarehouseID:     "7f1c2a44-9c30-4c8f-9a15-2a04b7f0f3c1",
		InitialQuantity: json.RawMessage(`10`),
	}
}

// fieldNames extrae los nombres de campo de un ValidationError.
func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr, "el error debe ser *domain.ValidationError")
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ValidateCreate
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateCreate_EntradaValida(t *testing.T) {
	cmd, err := ValidateCreate(validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Widget", cmd.Name)
	assert.Equal(t, "WID-001", cmd.SKU)
	assert.Equal(t, "wid-001", cmd.CanonicalSKU)
	assert.True(t, cmd.Price.Equal(decimal.RequireFromString("19.99")),
		"el precio debe parsearse exacto desde el literal")
	assert.Equal(t, int64(10), cmd.InitialQuantity)
}

func TestValidateCreate_PrecioComoNumeroJSON(t *testing.T) {
	in := validRequest()
	in.Price = json.RawMessage(`19.99`) // número sin comillas

	cmd, err := ValidateCreate(in)
	require.NoError(t, err)
	assert.True(t, cmd.Price.Equal(decimal.RequireFromString("19.99")))
}

// El literal decimal se conserva sin pasar por float64: "0.1" sigue siendo 0.1 exacto.
func TestValidateCreate_PrecioSinDerivaBinaria(t *testing.T) {
	in := validRequest()
	in.Price = json.RawMessage(`0.1`)

	cmd, err := ValidateCreate(in)
	require.NoError(t, err)
	assert.Equal(t, "0.1", cmd.Price.String())
}

func TestValidateCreate_AcumulaTodosLosCampos(t *testing.T) {
	_, err := ValidateCreate(dto.CreateProductRequest{})
	require.Error(t, err)

	names := fieldNames(t, err)
	assert.ElementsMatch(t, []string{"name", "sku", "price", "warehouse_id"}, names,
		"debe reportar TODOS los campos inválidos, no solo el primero")
}

func TestValidateCreate_PrecioInvalido(t *testing.T) {
	cases := []struct {
		nombre string
		precio string
	}{
		{"negativo", `"-1.00"`},
		{"no numérico", `"abc"`},
		{"null", `null`},
		{"vacío", `""`},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			in := validRequest()
			in.Price = json.RawMessage(tc.precio)
			_, err := ValidateCreate(in)
			require.Error(t, err)
			assert.Contains(t, fieldNames(t, err), "price")
		})
	}
}

func TestValidateCreate_CantidadInvalida(t *testing.T) {
	cases := []struct {
		nombre   string
		cantidad string
	}{
		{"negativa", `-5`},
		{"fraccionaria", `3.5`},
		{"no numérica", `"muchas"`},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			in := validRequest()
			in.InitialQuantity = json.RawMessage(tc.cantidad)
			_, err := ValidateCreate(in)
			require.Error(t, err)
			assert.Contains(t, fieldNames(t, err), "initial_quantity")
		})
	}
}

func TestValidateCreate_CantidadOpcionalPorDefectoCero(t *testing.T) {
	in := validRequest()
	in.InitialQuantity = nil

	cmd, err := ValidateCreate(in)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cmd.InitialQuantity)
}

func TestValidateCreate_RecortaYNormalizaSKU(t *testing.T) {
	in := validRequest()
	in.SKU = "  ABC-1 "

	cmd, err := ValidateCreate(in)
	require.NoError(t, err)
	assert.Equal(t, "ABC-1", cmd.SKU, "conserva la capitalización original")
	assert.Equal(t, "abc-1", cmd.CanonicalSKU, "canónico en minúsculas para comparar")
}

func TestValidateCreate_SKUSoloEspacios(t *testing.T) {
	in := validRequest()
	in.SKU = "   "

	_, err := ValidateCreate(in)
	require.Error(t, err)
	assert.Contains(t, fieldNames(t, err), "sku")
}

// Mismo input, mismo comando: el validador es puro y referencialmente transparente.
func TestValidateCreate_Idempotente(t *testing.T) {
	in := validRequest()

	cmd1, err1 := ValidateCreate(in)
	cmd2, err2 := ValidateCreate(in)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, cmd1, cmd2)
}

func TestCanonicalSKU(t *testing.T) {
	cases := []struct {
		entrada  string
		esperado string
	}{
		{"ABC-1", "abc-1"},
		{" abc-1 ", "abc-1"},
		{"  WID-001", "wid-001"},
		{"wid-001", "wid-001"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.esperado, CanonicalSKU(tc.entrada), "entrada %q", tc.entrada)
	}
}
