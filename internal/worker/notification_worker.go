package worker

import (
	"github.com/helpdesk-ti/solicitudes-service/internal/service"
)

// StartNotificationWorker registers notification handlers.
func StartNotificationWorker(notificacionService *service.NotificacionService) {
	if notificacionService == nil {
		return
	}
	notificacionService.RegisterHandlers()
}
