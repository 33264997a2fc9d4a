package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/agencyhub-backend/internal/http/response"
	"github.com/yungbote/agencyhub-backend/internal/platform/apierr"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
	"github.com/yungbote/agencyhub-backend/internal/services"
)

type DashboardHandler struct {
	log       *logger.Logger
	dashboard services.DashboardService
}

func NewDashboardHandler(log *logger.Logger, dashboard services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		log:       log.With("handler", "DashboardHandler"),
		dashboard: dashboard,
	}
}

// GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	stats, err := h.dashboard.Stats(c.Request.Context(), owner)
	if err != nil {
		logError(h.log, c, "GetStats failed", "error", err)
		response.RespondAPIError(c, apierr.Internal("load_dashboard_failed", err))
		return
	}
	response.RespondOK(c, stats)
}
