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

type ClientHandler struct {
	log      *logger.Logger
	clients  services.ClientService
	projects services.ProjectService
	payments services.PaymentService
}

func NewClientHandler(log *logger.Logger, clients services.ClientService, projects services.ProjectService, payments services.PaymentService) *ClientHandler {
	return &ClientHandler{
		log:      log.With("handler", "ClientHandler"),
		clients:  clients,
		projects: projects,
		payments: payments,
	}
}

// GET /api/clients
func (h *ClientHandler) ListClients(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	rows, err := h.clients.List(c.Request.Context(), owner)
	if err != nil {
		logError(h.log, c, "ListClients failed", "error", err)
		response.RespondAPIError(c, apierr.Internal("load_clients_failed", err))
		return
	}
	response.RespondOK(c, rows)
}

// GET /api/clients/:id
func (h *ClientHandler) GetClient(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "invalid_client_id")
	if !ok {
		return
	}
	row, aerr := ownedClient(c, h.clients, owner, id)
	if aerr != nil {
		response.RespondAPIError(c, aerr)
		return
	}
	response.RespondOK(c, row)
}

// POST /api/clients
func (h *ClientHandler) CreateClient(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	var in domain.ClientInput
	if !bindJSON(c, &in, "invalid_client_data") {
		return
	}
	row, err := h.clients.Create(c.Request.Context(), owner, in)
	if err != nil {
		logError(h.log, c, "CreateClient failed", "error", err)
		response.RespondAPIError(c, apierr.Internal("create_client_failed", err))
		return
	}
	response.RespondCreated(c, row)
}

// PATCH /api/clients/:id
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "invalid_client_id")
	if !ok {
		return
	}
	var patch domain.ClientPatch
	if !bindJSON(c, &patch, "invalid_client_data") {
		return
	}
	if _, aerr := ownedClient(c, h.clients, owner, id); aerr != nil {
		response.RespondAPIError(c, aerr)
		return
	}
	row, err := h.clients.Update(c.Request.Context(), id, patch)
	if err != nil {
		logError(h.log, c, "UpdateClient failed", "error", err, "client_id", id)
		response.RespondAPIError(c, apierr.Internal("update_client_failed", err))
		return
	}
	if row == nil {
		response.RespondAPIError(c, apierr.NotFound("client_not_found"))
		return
	}
	response.RespondOK(c, row)
}

// DELETE /api/clients/:id
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "invalid_client_id")
	if !ok {
		return
	}
	if _, aerr := ownedClient(c, h.clients, owner, id); aerr != nil {
		response.RespondAPIError(c, aerr)
		return
	}
	deleted, err := h.clients.Delete(c.Request.Context(), id)
	if err != nil {
		logError(h.log, c, "DeleteClient failed", "error", err, "client_id", id)
		response.RespondAPIError(c, apierr.Internal("delete_client_failed", err))
		return
	}
	if !deleted {
		response.RespondAPIError(c, apierr.NotFound("client_not_found"))
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/clients/:id/projects
func (h *ClientHandler) ListClientProjects(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "invalid_client_id")
	if !ok {
		return
	}
	if _, aerr := ownedClient(c, h.clients, owner, id); aerr != nil {
		response.RespondAPIError(c, aerr)
		return
	}
	rows, err := h.projects.ListByClient(c.Request.Context(), id)
	if err != nil {
		logError(h.log, c, "ListClientProjects failed", "error", err, "client_id", id)
		response.RespondAPIError(c, apierr.Internal("load_projects_failed", err))
		return
	}
	response.RespondOK(c, rows)
}

// GET /api/clients/:id/payments
func (h *ClientHandler) ListClientPayments(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "invalid_client_id")
	if !ok {
		return
	}
	if _, aerr := ownedClient(c, h.clients, owner, id); aerr != nil {
		response.RespondAPIError(c, aerr)
		return
	}
	rows, err := h.payments.ListByClient(c.Request.Context(), id)
	if err != nil {
		logError(h.log, c, "ListClientPayments failed", "error", err, "client_id", id)
		response.RespondAPIError(c, apierr.Internal("load_payments_failed", err))
		return
	}
	response.RespondOK(c, rows)
}
