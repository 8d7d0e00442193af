package handlers

import (
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-ti/solicitudes-service/internal/api/dto"
	"github.com/helpdesk-ti/solicitudes-service/internal/service"
	"github.com/helpdesk-ti/solicitudes-service/pkg/util"
)

// UsuariosHandler exposes employee registration and lookup.
type UsuariosHandler struct {
	usuarios *service.UsuarioService
}

// NewUsuariosHandler constructs handler.
func NewUsuariosHandler(usuarioService *service.UsuarioService) *UsuariosHandler {
	return &UsuariosHandler{usuarios: usuarioService}
}

// Crear handles POST /api/usuarios. The operation is an atomic
// find-or-create: posting an email that already exists returns the existing
// record instead of a conflict.
func (h *UsuariosHandler) Crear(c *fiber.Ctx) error {
	var req dto.CreateUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("cuerpo de la petición inválido")
	}

	usuario, err := h.usuarios.RegistrarOIdentificar(c.UserContext(), service.UsuarioInput{
		Nombre:          req.Nombre,
		ApellidoPaterno: req.ApellidoPaterno,
		ApellidoMaterno: req.ApellidoMaterno,
		Email:           req.Email,
		Telefono:        req.Telefono,
		Departamento:    req.Departamento,
		Puesto:          req.Puesto,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.FromUsuario(usuario))
}

// BuscarPorEmail handles GET /api/usuarios/email/:email.
func (h *UsuariosHandler) BuscarPorEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if decoded, err := url.PathUnescape(email); err == nil {
		email = decoded
	}
	if email == "" {
		return util.NewValidationError("email requerido")
	}

	usuario, err := h.usuarios.BuscarPorEmail(c.UserContext(), email)
	if err != nil {
		return err
	}

	return c.JSON(dto.FromUsuario(usuario))
}
