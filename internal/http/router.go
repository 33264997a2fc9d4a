package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/agencyhub-backend/internal/http/handlers"
	httpMW "github.com/yungbote/agencyhub-backend/internal/http/middleware"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	TracingEnabled bool
	CORSOrigins    []string

	AuthMiddleware *httpMW.AuthMiddleware

	ClientHandler    *httpH.ClientHandler
	ProjectHandler   *httpH.ProjectHandler
	PaymentHandler   *httpH.PaymentHandler
	ActivityHandler  *httpH.ActivityHandler
	DashboardHandler *httpH.DashboardHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachRequestData())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	protected := r.Group("/api")
	{
		// Middleware
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Clients
		if cfg.ClientHandler != nil {
			protected.GET("/clients", cfg.ClientHandler.ListClients)
			protected.POST("/clients", cfg.ClientHandler.CreateClient)
			protected.GET("/clients/:id", cfg.ClientHandler.GetClient)
			protected.PATCH("/clients/:id", cfg.ClientHandler.UpdateClient)
			protected.DELETE("/clients/:id", cfg.ClientHandler.DeleteClient)
			protected.GET("/clients/:id/projects", cfg.ClientHandler.ListClientProjects)
			protected.GET("/clients/:id/payments", cfg.ClientHandler.ListClientPayments)
		}

		// Projects
		if cfg.ProjectHandler != nil {
			protected.GET("/projects", cfg.ProjectHandler.ListProjects)
			protected.POST("/projects", cfg.ProjectHandler.CreateProject)
			protected.GET("/projects/:id", cfg.ProjectHandler.GetProject)
			protected.PATCH("/projects/:id", cfg.ProjectHandler.UpdateProject)
			protected.DELETE("/projects/:id", cfg.ProjectHandler.DeleteProject)
			protected.GET("/projects/:id/payments", cfg.ProjectHandler.ListProjectPayments)
		}

		// Payments
		if cfg.PaymentHandler != nil {
			protected.GET("/payments", cfg.PaymentHandler.ListPayments)
			protected.POST("/payments", cfg.PaymentHandler.CreatePayment)
			protected.GET("/payments/:id", cfg.PaymentHandler.GetPayment)
			protected.PATCH("/payments/:id", cfg.PaymentHandler.UpdatePayment)
			protected.DELETE("/payments/:id", cfg.PaymentHandler.DeletePayment)
		}

		// Activity feed
		if cfg.ActivityHandler != nil {
			protected.GET("/activities", cfg.ActivityHandler.ListActivities)
		}

		// Dashboard
		if cfg.DashboardHandler != nil {
			protected.GET("/dashboard/stats", cfg.DashboardHandler.GetStats)
		}
	}

	return r
}
