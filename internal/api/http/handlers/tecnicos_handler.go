package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-ti/solicitudes-service/internal/api/dto"
	"github.com/helpdesk-ti/solicitudes-service/internal/repository"
	"github.com/helpdesk-ti/solicitudes-service/pkg/util"
)

// TecnicosHandler serves the technician roster.
type TecnicosHandler struct {
	tecnicos repository.TecnicoRepository
}

// NewTecnicosHandler constructs handler.
func NewTecnicosHandler(tecnicos repository.TecnicoRepository) *TecnicosHandler {
	return &TecnicosHandler{tecnicos: tecnicos}
}

// Listar handles GET /api/tecnicos.
func (h *TecnicosHandler) Listar(c *fiber.Ctx) error {
	tecnicos, err := h.tecnicos.List(c.UserContext())
	if err != nil {
		return util.MapStoreError("Error al obtener técnicos", "Técnico no encontrado", err)
	}
	return c.JSON(dto.FromTecnicos(tecnicos))
}
