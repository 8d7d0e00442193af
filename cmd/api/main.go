package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/helpdesk-ti/solicitudes-service/internal/api/http"
	"github.com/helpdesk-ti/solicitudes-service/internal/api/http/handlers"
	"github.com/helpdesk-ti/solicitudes-service/internal/config"
	"github.com/helpdesk-ti/solicitudes-service/internal/events"
	"github.com/helpdesk-ti/solicitudes-service/internal/observability"
	"github.com/helpdesk-ti/solicitudes-service/internal/persistence"
	"github.com/helpdesk-ti/solicitudes-service/internal/repository"
	"github.com/helpdesk-ti/solicitudes-service/internal/service"
	"github.com/helpdesk-ti/solicitudes-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	usuarioRepo := repository.NewUsuarioRepository(pool)
	tipoRepo := repository.NewTipoServicioRepository(pool)
	tecnicoRepo := repository.NewTecnicoRepository(pool)
	solicitudRepo := repository.NewSolicitudRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificacionService := service.NewNotificacionService(dispatcher, usuarioRepo, logger, cfg.Notificacion)
	worker.StartNotificationWorker(notificacionService)

	usuarioService := service.NewUsuarioService(usuarioRepo)
	catalogoService := service.NewCatalogoService(tipoRepo, redis.Client, cfg.Catalogo.CacheTTL(), logger)
	solicitudService := service.NewSolicitudService(solicitudRepo, tecnicoRepo, dispatcher)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Usuarios:      handlers.NewUsuariosHandler(usuarioService),
		TiposServicio: handlers.NewTiposServicioHandler(catalogoService),
		Solicitudes:   handlers.NewSolicitudesHandler(solicitudService),
		Tecnicos:      handlers.NewTecnicosHandler(tecnicoRepo),
		StaticDir:     cfg.App.StaticDir,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
