package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-ti/solicitudes-service/internal/api/dto"
	"github.com/helpdesk-ti/solicitudes-service/internal/service"
)

// TiposServicioHandler serves the service-type catalog.
type TiposServicioHandler struct {
	catalogo *service.CatalogoService
}

// NewTiposServicioHandler constructs handler.
func NewTiposServicioHandler(catalogoService *service.CatalogoService) *TiposServicioHandler {
	return &TiposServicioHandler{catalogo: catalogoService}
}

// Listar handles GET /api/tipos-servicio.
func (h *TiposServicioHandler) Listar(c *fiber.Ctx) error {
	tipos, err := h.catalogo.ListarTipos(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.FromTiposServicio(tipos))
}
