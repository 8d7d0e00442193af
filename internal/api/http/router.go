package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-ti/solicitudes-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Usuarios      *handlers.UsuariosHandler
	TiposServicio *handlers.TiposServicioHandler
	Solicitudes   *handlers.SolicitudesHandler
	Tecnicos      *handlers.TecnicosHandler
	StaticDir     string
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Post("/usuarios", cfg.Usuarios.Crear)
	api.Get("/usuarios/email/:email", cfg.Usuarios.BuscarPorEmail)

	api.Get("/tipos-servicio", cfg.TiposServicio.Listar)
	api.Get("/tecnicos", cfg.Tecnicos.Listar)

	api.Post("/solicitudes", cfg.Solicitudes.Crear)
	api.Get("/solicitudes", cfg.Solicitudes.ListarTodas)
	// the usuario route must precede /solicitudes/:id so "usuario" is not
	// swallowed as an id
	api.Get("/solicitudes/usuario/:id_usuario", cfg.Solicitudes.ListarPorUsuario)
	api.Get("/solicitudes/:id", cfg.Solicitudes.Obtener)
	api.Patch("/solicitudes/:id/estado", cfg.Solicitudes.CambiarEstado)
	api.Patch("/solicitudes/:id/tecnico", cfg.Solicitudes.AsignarTecnico)

	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}
}
