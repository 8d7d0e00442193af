package events

import (
	"time"

	"github.com/helpdesk-ti/solicitudes-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSolicitudCreada EventType = "solicitud_creada"
	EventEstadoCambiado  EventType = "estado_cambiado"
	EventTecnicoAsignado EventType = "tecnico_asignado"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	SolicitudID int64       `json:"id_solicitud"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// SolicitudCreadaPayload payload.
type SolicitudCreadaPayload struct {
	UsuarioID int64            `json:"id_usuario"`
	TipoID    int32            `json:"id_tipo"`
	Titulo    string           `json:"titulo"`
	Prioridad domain.Prioridad `json:"prioridad"`
}

// EstadoCambiadoPayload payload.
type EstadoCambiadoPayload struct {
	UsuarioID      int64         `json:"id_usuario"`
	EstadoAnterior domain.Estado `json:"estado_anterior"`
	EstadoNuevo    domain.Estado `json:"estado_nuevo"`
}

// TecnicoAsignadoPayload payload.
type TecnicoAsignadoPayload struct {
	TecnicoID int32 `json:"id_tecnico"`
}
