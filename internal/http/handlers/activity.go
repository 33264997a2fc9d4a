package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/agencyhub-backend/internal/http/response"
	"github.com/yungbote/agencyhub-backend/internal/platform/apierr"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
	"github.com/yungbote/agencyhub-backend/internal/services"
)

type ActivityHandler struct {
	log        *logger.Logger
	activities services.ActivityService
}

func NewActivityHandler(log *logger.Logger, activities services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		log:        log.With("handler", "ActivityHandler"),
		activities: activities,
	}
}

// GET /api/activities?limit=N
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.RespondAPIError(c, apierr.BadRequest("invalid_limit", errors.New("limit must be a positive integer")))
			return
		}
		limit = n
	}
	rows, err := h.activities.List(c.Request.Context(), owner, limit)
	if err != nil {
		logError(h.log, c, "ListActivities failed", "error", err)
		response.RespondAPIError(c, apierr.Internal("load_activities_failed", err))
		return
	}
	response.RespondOK(c, rows)
}
