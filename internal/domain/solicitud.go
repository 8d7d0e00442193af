package domain

import (
	"fmt"
	"time"
)

// Estado enumerates lifecycle states for solicitudes.
type Estado string

const (
	EstadoPendiente Estado = "Pendiente"
	EstadoEnProceso Estado = "En Proceso"
	EstadoResuelto  Estado = "Resuelto"
	EstadoCancelada Estado = "Cancelada"
)

// Prioridad enumerates urgency levels.
type Prioridad string

const (
	PrioridadBaja  Prioridad = "Baja"
	PrioridadMedia Prioridad = "Media"
	PrioridadAlta  Prioridad = "Alta"
)

// ParseEstado validates a raw status label against the closed set.
func ParseEstado(raw string) (Estado, error) {
	switch Estado(raw) {
	case EstadoPendiente, EstadoEnProceso, EstadoResuelto, EstadoCancelada:
		return Estado(raw), nil
	}
	return "", fmt.Errorf("estado desconocido: %q", raw)
}

// ParsePrioridad validates a raw priority label against the closed set.
func ParsePrioridad(raw string) (Prioridad, error) {
	switch Prioridad(raw) {
	case PrioridadBaja, PrioridadMedia, PrioridadAlta:
		return Prioridad(raw), nil
	}
	return "", fmt.Errorf("prioridad desconocida: %q", raw)
}

// Solicitud is the aggregate for support requests.
type Solicitud struct {
	ID              int64
	UsuarioID       int64
	TipoID          int32
	Titulo          string
	Descripcion     string
	Prioridad       Prioridad
	Estado          Estado
	Equipo          *string
	Ubicacion       string
	FechaSolicitud  time.Time
	FechaResolucion *time.Time
	TecnicoID       *int32
}

// SolicitudCompleta is the denormalized read projection backed by
// vista_solicitudes_completas.
type SolicitudCompleta struct {
	ID              int64
	UsuarioID       int64
	Usuario         string
	Email           string
	TipoID          int32
	TipoServicio    string
	Titulo          string
	Descripcion     string
	Prioridad       Prioridad
	Estado          Estado
	Equipo          *string
	Ubicacion       string
	FechaSolicitud  time.Time
	FechaResolucion *time.Time
	TecnicoAsignado *string
}
