package app

import (
	httpserver "github.com/yungbote/agencyhub-backend/internal/http"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, cfg Config, h Handlers, mw Middleware) *httpserver.Server {
	return httpserver.NewServer(httpserver.RouterConfig{
		Log:              log,
		ServiceName:      cfg.Otel.ServiceName,
		TracingEnabled:   cfg.Otel.Enabled,
		CORSOrigins:      cfg.CORSOrigins,
		AuthMiddleware:   mw.Auth,
		ClientHandler:    h.Client,
		ProjectHandler:   h.Project,
		PaymentHandler:   h.Payment,
		ActivityHandler:  h.Activity,
		DashboardHandler: h.Dashboard,
		HealthHandler:    h.Health,
	})
}
