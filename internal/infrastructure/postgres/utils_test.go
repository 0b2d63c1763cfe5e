package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "products_sku_lower_key"}

	assert.True(t, isUniqueViolation(dup))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert product: %w", dup)),
		"debe detectar el código aunque el error venga envuelto")
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}), "FK violation no es unique violation")
	assert.False(t, isUniqueViolation(errors.New("otra cosa")))
}
