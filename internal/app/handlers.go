package app

import (
	"github.com/yungbote/agencyhub-backend/internal/data/store"
	"github.com/yungbote/agencyhub-backend/internal/http/handlers"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
)

type Handlers struct {
	Client    *handlers.ClientHandler
	Project   *handlers.ProjectHandler
	Payment   *handlers.PaymentHandler
	Activity  *handlers.ActivityHandler
	Dashboard *handlers.DashboardHandler
	Health    *handlers.HealthHandler
}

func wireHandlers(log *logger.Logger, st store.Store, svc Services) Handlers {
	log.Info("Wiring handlers...")
	var pinger handlers.Pinger
	if p, ok := st.(handlers.Pinger); ok {
		pinger = p
	}
	return Handlers{
		Client:    handlers.NewClientHandler(log, svc.Clients, svc.Projects, svc.Payments),
		Project:   handlers.NewProjectHandler(log, svc.Clients, svc.Projects, svc.Payments),
		Payment:   handlers.NewPaymentHandler(log, svc.Clients, svc.Projects, svc.Payments),
		Activity:  handlers.NewActivityHandler(log, svc.Activity),
		Dashboard: handlers.NewDashboardHandler(log, svc.Dashboard),
		Health:    handlers.NewHealthHandler(pinger),
	}
}
