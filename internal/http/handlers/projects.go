package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/agencyhub-backend/internal/domain"
	"github.com/yungbote/agencyhub-backend/internal/http/response"
	"github.com/yungbote/agencyhub-backend/internal/platform/apierr"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
	"github.com/yungbote/agencyhub-backend/internal/services"
)

type ProjectHandler struct {
	log      *logger.Logger
	clients  services.ClientService
	projects services.ProjectService
	payments services.PaymentService
}

func NewProjectHandler(log *logger.Logger, clients services.ClientService, projects services.ProjectService, payments services.PaymentService) *ProjectHandler {
	return &ProjectHandler{
		log:      log.With("handler", "ProjectHandler"),
		clients:  clients,
		projects: projects,
		payments: payments,
	}
}

// GET /api/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	rows, err := h.projects.List(c.Request.Context(), owner)
	if err != nil {
		logError(h.log, c, "ListProjects failed", "error", err)
		response.RespondAPIError(c, apierr.Internal("load_projects_failed", err))
		return
	}
	response.RespondOK(c, rows)
}

// GET /api/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "invalid_project_id")
	if !ok {
		return
	}
	row, aerr := ownedProject(c, h.projects, owner, id)
	if aerr != nil {
		response.RespondAPIError(c, aerr)
		return
	}
	response.RespondOK(c, row)
}

// POST /api/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	var in domain.ProjectInput
	if !bindJSON(c, &in, "invalid_project_data") {
		return
	}
	if _, aerr := ownedClient(c, h.clients, owner, in.ClientID); aerr != nil {
		response.RespondAPIError(c, asReference(aerr))
		return
	}
	row, err := h.projects.Create(c.Request.Context(), owner, in)
	if err != nil {
		logError(h.log, c, "CreateProject failed", "error", err, "client_id", in.ClientID)
		response.RespondAPIError(c, apierr.Internal("create_project_failed", err))
		return
	}
	response.RespondCreated(c, row)
}

// PATCH /api/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "invalid_project_id")
	if !ok {
		return
	}
	var patch domain.ProjectPatch
	if !bindJSON(c, &patch, "invalid_project_data") {
		return
	}
	if _, aerr := ownedProject(c, h.projects, owner, id); aerr != nil {
		response.RespondAPIError(c, aerr)
		return
	}
	if patch.ClientID != nil {
		if _, aerr := ownedClient(c, h.clients, owner, *patch.ClientID); aerr != nil {
			response.RespondAPIError(c, asReference(aerr))
			return
		}
	}
	row, err := h.projects.Update(c.Request.Context(), id, patch)
	if err != nil {
		logError(h.log, c, "UpdateProject failed", "error", err, "project_id", id)
		response.RespondAPIError(c, apierr.Internal("update_project_failed", err))
		return
	}
	if row == nil {
		response.RespondAPIError(c, apierr.NotFound("project_not_found"))
		return
	}
	response.RespondOK(c, row)
}

// DELETE /api/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "invalid_project_id")
	if !ok {
		return
	}
	if _, aerr := ownedProject(c, h.projects, owner, id); aerr != nil {
		response.RespondAPIError(c, aerr)
		return
	}
	deleted, err := h.projects.Delete(c.Request.Context(), id)
	if err != nil {
		logError(h.log, c, "DeleteProject failed", "error", err, "project_id", id)
		response.RespondAPIError(c, apierr.Internal("delete_project_failed", err))
		return
	}
	if !deleted {
		response.RespondAPIError(c, apierr.NotFound("project_not_found"))
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/projects/:id/payments
func (h *ProjectHandler) ListProjectPayments(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "invalid_project_id")
	if !ok {
		return
	}
	if _, aerr := ownedProject(c, h.projects, owner, id); aerr != nil {
		response.RespondAPIError(c, aerr)
		return
	}
	rows, err := h.payments.ListByProject(c.Request.Context(), id)
	if err != nil {
		logError(h.log, c, "ListProjectPayments failed", "error", err, "project_id", id)
		response.RespondAPIError(c, apierr.Internal("load_payments_failed", err))
		return
	}
	response.RespondOK(c, rows)
}
