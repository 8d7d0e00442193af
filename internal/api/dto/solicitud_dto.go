package dto

import (
	"time"

	"github.com/helpdesk-ti/solicitudes-service/internal/domain"
)

// CreateSolicitudRequest payload.
type CreateSolicitudRequest struct {
	UsuarioID   int64   `json:"id_usuario"`
	TipoID      int32   `json:"id_tipo"`
	Titulo      string  `json:"titulo"`
	Descripcion string  `json:"descripcion"`
	Prioridad   string  `json:"prioridad"`
	Equipo      *string `json:"equipo"`
	Ubicacion   string  `json:"ubicacion"`
}

// CambiarEstadoRequest payload.
type CambiarEstadoRequest struct {
	Estado string `json:"estado"`
}

// AsignarTecnicoRequest payload.
type AsignarTecnicoRequest struct {
	TecnicoID int32 `json:"id_tecnico"`
}

// SolicitudResponse mirrors the solicitudes row on the wire.
type SolicitudResponse struct {
	ID              int64            `json:"id_solicitud"`
	UsuarioID       int64            `json:"id_usuario"`
	TipoID          int32            `json:"id_tipo"`
	Titulo          string           `json:"titulo"`
	Descripcion     string           `json:"descripcion"`
	Prioridad       domain.Prioridad `json:"prioridad"`
	Estado          domain.Estado    `json:"estado"`
	Equipo          *string          `json:"equipo"`
	Ubicacion       string           `json:"ubicacion"`
	FechaSolicitud  time.Time        `json:"fecha_solicitud"`
	FechaResolucion *time.Time       `json:"fecha_resolucion"`
	TecnicoID       *int32           `json:"id_tecnico"`
}

// SolicitudCompletaResponse mirrors vista_solicitudes_completas.
type SolicitudCompletaResponse struct {
	ID              int64            `json:"id_solicitud"`
	UsuarioID       int64            `json:"id_usuario"`
	Usuario         string           `json:"usuario"`
	Email           string           `json:"email"`
	TipoID          int32            `json:"id_tipo"`
	TipoServicio    string           `json:"tipo_servicio"`
	Titulo          string           `json:"titulo"`
	Descripcion     string           `json:"descripcion"`
	Prioridad       domain.Prioridad `json:"prioridad"`
	Estado          domain.Estado    `json:"estado"`
	Equipo          *string          `json:"equipo"`
	Ubicacion       string           `json:"ubicacion"`
	FechaSolicitud  time.Time        `json:"fecha_solicitud"`
	FechaResolucion *time.Time       `json:"fecha_resolucion"`
	TecnicoAsignado *string          `json:"tecnico_asignado"`
}

// FromSolicitud converts the domain model.
func FromSolicitud(solicitud *domain.Solicitud) SolicitudResponse {
	return SolicitudResponse{
		ID:              solicitud.ID,
		UsuarioID:       solicitud.UsuarioID,
		TipoID:          solicitud.TipoID,
		Titulo:          solicitud.Titulo,
		Descripcion:     solicitud.Descripcion,
		Prioridad:       solicitud.Prioridad,
		Estado:          solicitud.Estado,
		Equipo:          solicitud.Equipo,
		Ubicacion:       solicitud.Ubicacion,
		FechaSolicitud:  solicitud.FechaSolicitud,
		FechaResolucion: solicitud.FechaResolucion,
		TecnicoID:       solicitud.TecnicoID,
	}
}

// FromSolicitudCompleta converts the projection model.
func FromSolicitudCompleta(completa *domain.SolicitudCompleta) SolicitudCompletaResponse {
	return SolicitudCompletaResponse{
		ID:              completa.ID,
		UsuarioID:       completa.UsuarioID,
		Usuario:         completa.Usuario,
		Email:           completa.Email,
		TipoID:          completa.TipoID,
		TipoServicio:    completa.TipoServicio,
		Titulo:          completa.Titulo,
		Descripcion:     completa.Descripcion,
		Prioridad:       completa.Prioridad,
		Estado:          completa.Estado,
		Equipo:          completa.Equipo,
		Ubicacion:       completa.Ubicacion,
		FechaSolicitud:  completa.FechaSolicitud,
		FechaResolucion: completa.FechaResolucion,
		TecnicoAsignado: completa.TecnicoAsignado,
	}
}

// FromSolicitudesCompletas converts a slice, never returning nil so empty
// results serialize as [] instead of null.
func FromSolicitudesCompletas(completas []domain.SolicitudCompleta) []SolicitudCompletaResponse {
	items := make([]SolicitudCompletaResponse, 0, len(completas))
	for i := range completas {
		items = append(items, FromSolicitudCompleta(&completas[i]))
	}
	return items
}
