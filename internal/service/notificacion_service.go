package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/helpdesk-ti/solicitudes-service/internal/config"
	"github.com/helpdesk-ti/solicitudes-service/internal/events"
	"github.com/helpdesk-ti/solicitudes-service/internal/repository"
)

// NotificacionService handles emitting notifications for domain events.
// Delivery is stubbed: the intake UI promises a confirmation mail, so the
// hooks exist and log, but nothing leaves the process.
type NotificacionService struct {
	dispatcher events.Dispatcher
	usuarios   repository.UsuarioRepository
	logger     *zap.Logger
	cfg        config.NotificacionConfig
}

// NewNotificacionService creates the service. usuarios resolves the employee
// a mail would go to.
func NewNotificacionService(dispatcher events.Dispatcher, usuarios repository.UsuarioRepository, logger *zap.Logger, cfg config.NotificacionConfig) *NotificacionService {
	return &NotificacionService{
		dispatcher: dispatcher,
		usuarios:   usuarios,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificacionService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventSolicitudCreada, n.handleSolicitudCreada)
	n.dispatcher.Subscribe(events.EventEstadoCambiado, n.handleEstadoCambiado)
	n.dispatcher.Subscribe(events.EventTecnicoAsignado, n.handleTecnicoAsignado)
}

func (n *NotificacionService) handleSolicitudCreada(ctx context.Context, event events.Event) error {
	n.logger.Info("SolicitudCreada", zap.Int64("id_solicitud", event.SolicitudID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificacionService) handleEstadoCambiado(ctx context.Context, event events.Event) error {
	n.logger.Info("EstadoCambiado", zap.Int64("id_solicitud", event.SolicitudID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificacionService) handleTecnicoAsignado(ctx context.Context, event events.Event) error {
	n.logger.Info("TecnicoAsignado", zap.Int64("id_solicitud", event.SolicitudID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificacionService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("para", n.destinatario(ctx, event)),
		zap.Int64("id_solicitud", event.SolicitudID),
		zap.String("event_type", string(event.Type)))
}

// destinatario resolves the employee email the mail would go to. A failed
// lookup degrades to an empty recipient; the stub still logs the event.
func (n *NotificacionService) destinatario(ctx context.Context, event events.Event) string {
	var usuarioID int64
	switch payload := event.Payload.(type) {
	case events.SolicitudCreadaPayload:
		usuarioID = payload.UsuarioID
	case events.EstadoCambiadoPayload:
		usuarioID = payload.UsuarioID
	}
	if usuarioID == 0 || n.usuarios == nil {
		return ""
	}

	usuario, err := n.usuarios.GetByID(ctx, usuarioID)
	if err != nil {
		n.logger.Warn("destinatario lookup failed", zap.Int64("id_usuario", usuarioID), zap.Error(err))
		return ""
	}
	return usuario.Email
}

func (n *NotificacionService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.Int64("id_solicitud", event.SolicitudID),
		zap.String("event_type", string(event.Type)))
}
