package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStoreErrorNoRows(t *testing.T) {
	err := MapStoreError("Error al buscar usuario", "Usuario no encontrado", pgx.ErrNoRows)

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
	assert.Equal(t, "Usuario no encontrado", domainErr.Message)
	assert.Empty(t, domainErr.Detalle)
}

func TestMapStoreErrorIntegrityViolations(t *testing.T) {
	cases := []struct {
		name     string
		code     string
		wantCode string
	}{
		{name: "unique", code: "23505", wantCode: "CONSTRAINT_VIOLATION"},
		{name: "foreign key", code: "23503", wantCode: "FOREIGN_KEY_VIOLATION"},
		{name: "not null", code: "23502", wantCode: "VALIDATION_FAILED"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: tc.code, Message: "detalle de la base"}
			err := MapStoreError("Error al crear solicitud", "Solicitud no encontrada", pgErr)

			var domainErr *DomainError
			require.ErrorAs(t, err, &domainErr)
			// integrity errors stay 500 with the store detail attached
			assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
			assert.Equal(t, tc.wantCode, domainErr.Code)
			assert.Equal(t, "Error al crear solicitud", domainErr.Message)
			assert.Equal(t, "detalle de la base", domainErr.Detalle)
		})
	}
}

func TestMapStoreErrorGeneric(t *testing.T) {
	cause := errors.New("connection refused")
	err := MapStoreError("Error al obtener solicitudes", "Solicitud no encontrada", cause)

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
	assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	assert.Equal(t, "connection refused", domainErr.Detalle)
	assert.ErrorIs(t, domainErr, cause)
}

func TestMapStoreErrorNil(t *testing.T) {
	assert.NoError(t, MapStoreError("x", "y", nil))
}

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewValidationError("estado desconocido")
	mapped := ToDomainError(original)

	require.NotNil(t, mapped)
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
	assert.Equal(t, "estado desconocido", mapped.Message)
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))

	require.NotNil(t, mapped)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
}
