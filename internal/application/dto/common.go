package dto

import "github.com/jhoicas/Catalogo-api/internal/domain"

// ErrorResponse cuerpo de error HTTP.
// Fields solo se llena en errores de validación (lista completa de campos).
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}
