package app

import (
	"github.com/yungbote/agencyhub-backend/internal/data/store"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
	"github.com/yungbote/agencyhub-backend/internal/services"
)

type Services struct {
	Recorder  *services.ActivityRecorder
	Clients   services.ClientService
	Projects  services.ProjectService
	Payments  services.PaymentService
	Activity  services.ActivityService
	Dashboard services.DashboardService
}

func wireServices(st store.Store, log *logger.Logger, cfg Config) Services {
	log.Info("Wiring services...")
	rec := services.NewActivityRecorder(cfg.Money, log)
	return Services{
		Recorder:  rec,
		Clients:   services.NewClientService(st, rec, nil, log),
		Projects:  services.NewProjectService(st, rec, nil, log),
		Payments:  services.NewPaymentService(st, rec, nil, log),
		Activity:  services.NewActivityService(st, cfg.ActivityDefaultLimit, log),
		Dashboard: services.NewDashboardService(st, cfg.DashboardLocation, nil, log),
	}
}
