package service

import (
	"context"
	"strings"

	"github.com/helpdesk-ti/solicitudes-service/internal/domain"
	"github.com/helpdesk-ti/solicitudes-service/internal/events"
	"github.com/helpdesk-ti/solicitudes-service/internal/repository"
	"github.com/helpdesk-ti/solicitudes-service/pkg/util"
)

// SolicitudCreateInput describes the ticket intake payload.
type SolicitudCreateInput struct {
	UsuarioID   int64
	TipoID      int32
	Titulo      string
	Descripcion string
	Prioridad   string
	Equipo      *string
	Ubicacion   string
}

// SolicitudService coordinates ticket workflows.
type SolicitudService struct {
	solicitudes repository.SolicitudRepository
	tecnicos    repository.TecnicoRepository
	dispatcher  events.Dispatcher
}

// NewSolicitudService constructs the service.
func NewSolicitudService(solicitudes repository.SolicitudRepository, tecnicos repository.TecnicoRepository, dispatcher events.Dispatcher) *SolicitudService {
	return &SolicitudService{solicitudes: solicitudes, tecnicos: tecnicos, dispatcher: dispatcher}
}

// Crear registers a new solicitud. estado and fecha_solicitud come from the
// store defaults; fecha_resolucion starts null.
func (s *SolicitudService) Crear(ctx context.Context, input SolicitudCreateInput) (*domain.Solicitud, error) {
	titulo := strings.TrimSpace(input.Titulo)
	descripcion := strings.TrimSpace(input.Descripcion)
	if input.UsuarioID <= 0 || input.TipoID <= 0 || titulo == "" || descripcion == "" {
		return nil, util.NewValidationError("id_usuario, id_tipo, titulo y descripcion son requeridos")
	}

	prioridad := domain.PrioridadMedia
	if strings.TrimSpace(input.Prioridad) != "" {
		parsed, err := domain.ParsePrioridad(strings.TrimSpace(input.Prioridad))
		if err != nil {
			return nil, util.NewValidationError(err.Error())
		}
		prioridad = parsed
	}

	solicitud := &domain.Solicitud{
		UsuarioID:   input.UsuarioID,
		TipoID:      input.TipoID,
		Titulo:      titulo,
		Descripcion: descripcion,
		Prioridad:   prioridad,
		Equipo:      trimOptional(input.Equipo),
		Ubicacion:   strings.TrimSpace(input.Ubicacion),
	}

	if err := s.solicitudes.Create(ctx, solicitud); err != nil {
		return nil, util.MapStoreError("Error al crear solicitud", "Solicitud no encontrada", err)
	}

	s.publish(ctx, events.Event{
		Type:        events.EventSolicitudCreada,
		SolicitudID: solicitud.ID,
		Payload: events.SolicitudCreadaPayload{
			UsuarioID: solicitud.UsuarioID,
			TipoID:    solicitud.TipoID,
			Titulo:    solicitud.Titulo,
			Prioridad: solicitud.Prioridad,
		},
	})
	return solicitud, nil
}

// ListarTodas returns the full joined projection of every solicitud.
func (s *SolicitudService) ListarTodas(ctx context.Context) ([]domain.SolicitudCompleta, error) {
	completas, err := s.solicitudes.ListCompletas(ctx)
	if err != nil {
		return nil, util.MapStoreError("Error al obtener solicitudes", "Solicitud no encontrada", err)
	}
	return completas, nil
}

// ListarPorUsuario returns the joined projection filtered to one usuario.
// A usuario with no solicitudes yields an empty slice, not an error.
func (s *SolicitudService) ListarPorUsuario(ctx context.Context, usuarioID int64) ([]domain.SolicitudCompleta, error) {
	completas, err := s.solicitudes.ListCompletasByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, util.MapStoreError("Error al obtener solicitudes del usuario", "Solicitud no encontrada", err)
	}
	return completas, nil
}

// ObtenerPorID fetches one solicitud from the joined projection.
func (s *SolicitudService) ObtenerPorID(ctx context.Context, id int64) (*domain.SolicitudCompleta, error) {
	completa, err := s.solicitudes.GetCompletaByID(ctx, id)
	if err != nil {
		return nil, util.MapStoreError("Error al obtener solicitud", "Solicitud no encontrada", err)
	}
	return completa, nil
}

// CambiarEstado validates the new status against the closed set and applies
// it. The store stamps fecha_resolucion only on the transition into Resuelto
// and preserves it afterwards.
func (s *SolicitudService) CambiarEstado(ctx context.Context, id int64, rawEstado string) (*domain.Solicitud, error) {
	estado, err := domain.ParseEstado(strings.TrimSpace(rawEstado))
	if err != nil {
		return nil, util.NewValidationError(err.Error())
	}

	// read first so the emitted event carries the estado being replaced
	actual, err := s.solicitudes.GetCompletaByID(ctx, id)
	if err != nil {
		return nil, util.MapStoreError("Error al actualizar solicitud", "Solicitud no encontrada", err)
	}

	solicitud, err := s.solicitudes.UpdateEstado(ctx, id, estado)
	if err != nil {
		return nil, util.MapStoreError("Error al actualizar solicitud", "Solicitud no encontrada", err)
	}

	s.publish(ctx, events.Event{
		Type:        events.EventEstadoCambiado,
		SolicitudID: solicitud.ID,
		Payload: events.EstadoCambiadoPayload{
			UsuarioID:      solicitud.UsuarioID,
			EstadoAnterior: actual.Estado,
			EstadoNuevo:    solicitud.Estado,
		},
	})
	return solicitud, nil
}

// AsignarTecnico assigns a roster technician to an existing solicitud.
func (s *SolicitudService) AsignarTecnico(ctx context.Context, id int64, tecnicoID int32) (*domain.Solicitud, error) {
	if tecnicoID <= 0 {
		return nil, util.NewValidationError("id_tecnico requerido")
	}

	if _, err := s.tecnicos.GetByID(ctx, tecnicoID); err != nil {
		return nil, util.MapStoreError("Error al asignar técnico", "Técnico no encontrado", err)
	}

	solicitud, err := s.solicitudes.AsignarTecnico(ctx, id, tecnicoID)
	if err != nil {
		return nil, util.MapStoreError("Error al asignar técnico", "Solicitud no encontrada", err)
	}

	s.publish(ctx, events.Event{
		Type:        events.EventTecnicoAsignado,
		SolicitudID: solicitud.ID,
		Payload:     events.TecnicoAsignadoPayload{TecnicoID: tecnicoID},
	})
	return solicitud, nil
}

func (s *SolicitudService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
