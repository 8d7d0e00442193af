package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-ti/solicitudes-service/internal/api/dto"
	"github.com/helpdesk-ti/solicitudes-service/internal/service"
	"github.com/helpdesk-ti/solicitudes-service/pkg/util"
)

// SolicitudesHandler manages ticket intake, querying and lifecycle updates.
type SolicitudesHandler struct {
	solicitudes *service.SolicitudService
}

// NewSolicitudesHandler constructs handler.
func NewSolicitudesHandler(solicitudService *service.SolicitudService) *SolicitudesHandler {
	return &SolicitudesHandler{solicitudes: solicitudService}
}

// Crear handles POST /api/solicitudes.
func (h *SolicitudesHandler) Crear(c *fiber.Ctx) error {
	var req dto.CreateSolicitudRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("cuerpo de la petición inválido")
	}

	solicitud, err := h.solicitudes.Crear(c.UserContext(), service.SolicitudCreateInput{
		UsuarioID:   req.UsuarioID,
		TipoID:      req.TipoID,
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
		Prioridad:   req.Prioridad,
		Equipo:      req.Equipo,
		Ubicacion:   req.Ubicacion,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.FromSolicitud(solicitud))
}

// ListarTodas handles GET /api/solicitudes.
func (h *SolicitudesHandler) ListarTodas(c *fiber.Ctx) error {
	completas, err := h.solicitudes.ListarTodas(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.FromSolicitudesCompletas(completas))
}

// ListarPorUsuario handles GET /api/solicitudes/usuario/:id_usuario.
// A usuario without solicitudes gets an empty array, never a 404.
func (h *SolicitudesHandler) ListarPorUsuario(c *fiber.Ctx) error {
	usuarioID, err := parseID(c.Params("id_usuario"))
	if err != nil {
		return util.NewValidationError("id_usuario inválido")
	}

	completas, err := h.solicitudes.ListarPorUsuario(c.UserContext(), usuarioID)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromSolicitudesCompletas(completas))
}

// Obtener handles GET /api/solicitudes/:id.
func (h *SolicitudesHandler) Obtener(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return util.NewValidationError("id inválido")
	}

	completa, err := h.solicitudes.ObtenerPorID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromSolicitudCompleta(completa))
}

// CambiarEstado handles PATCH /api/solicitudes/:id/estado.
func (h *SolicitudesHandler) CambiarEstado(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return util.NewValidationError("id inválido")
	}

	var req dto.CambiarEstadoRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("cuerpo de la petición inválido")
	}

	solicitud, err := h.solicitudes.CambiarEstado(c.UserContext(), id, req.Estado)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromSolicitud(solicitud))
}

// AsignarTecnico handles PATCH /api/solicitudes/:id/tecnico.
func (h *SolicitudesHandler) AsignarTecnico(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return util.NewValidationError("id inválido")
	}

	var req dto.AsignarTecnicoRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("cuerpo de la petición inválido")
	}

	solicitud, err := h.solicitudes.AsignarTecnico(c.UserContext(), id, req.TecnicoID)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromSolicitud(solicitud))
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}
