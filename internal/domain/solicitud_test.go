package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEstado(t *testing.T) {
	cases := []struct {
		raw     string
		want    Estado
		wantErr bool
	}{
		{raw: "Pendiente", want: EstadoPendiente},
		{raw: "En Proceso", want: EstadoEnProceso},
		{raw: "Resuelto", want: EstadoResuelto},
		{raw: "Cancelada", want: EstadoCancelada},
		{raw: "resuelto", wantErr: true},
		{raw: "Cerrado", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseEstado(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParsePrioridad(t *testing.T) {
	cases := []struct {
		raw     string
		want    Prioridad
		wantErr bool
	}{
		{raw: "Baja", want: PrioridadBaja},
		{raw: "Media", want: PrioridadMedia},
		{raw: "Alta", want: PrioridadAlta},
		{raw: "Urgente", wantErr: true},
		{raw: "alta", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParsePrioridad(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
