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

type PaymentHandler struct {
	log      *logger.Logger
	clients  services.ClientService
	projects services.ProjectService
	payments services.PaymentService
}

func NewPaymentHandler(log *logger.Logger, clients services.ClientService, projects services.ProjectService, payments services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		log:      log.With("handler", "PaymentHandler"),
		clients:  clients,
		projects: projects,
		payments: payments,
	}
}

// references checks that the client and optional project a payment points at exist for owner.
func (h *PaymentHandler) references(c *gin.Context, owner string, clientID *int64, projectID *int64) *apierr.Error {
	if clientID != nil {
		if _, aerr := ownedClient(c, h.clients, owner, *clientID); aerr != nil {
			return asReference(aerr)
		}
	}
	if projectID != nil {
		if _, aerr := ownedProject(c, h.projects, owner, *projectID); aerr != nil {
			return asReference(aerr)
		}
	}
	return nil
}

// GET /api/payments
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	rows, err := h.payments.List(c.Request.Context(), owner)
	if err != nil {
		logError(h.log, c, "ListPayments failed", "error", err)
		response.RespondAPIError(c, apierr.Internal("load_payments_failed", err))
		return
	}
	response.RespondOK(c, rows)
}

// GET /api/payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "invalid_payment_id")
	if !ok {
		return
	}
	row, aerr := ownedPayment(c, h.payments, owner, id)
	if aerr != nil {
		response.RespondAPIError(c, aerr)
		return
	}
	response.RespondOK(c, row)
}

// POST /api/payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	var in domain.PaymentInput
	if !bindJSON(c, &in, "invalid_payment_data") {
		return
	}
	if aerr := h.references(c, owner, &in.ClientID, in.ProjectID); aerr != nil {
		response.RespondAPIError(c, aerr)
		return
	}
	row, err := h.payments.Create(c.Request.Context(), owner, in)
	if err != nil {
		logError(h.log, c, "CreatePayment failed", "error", err, "client_id", in.ClientID)
		response.RespondAPIError(c, apierr.Internal("create_payment_failed", err))
		return
	}
	response.RespondCreated(c, row)
}

// PATCH /api/payments/:id
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "invalid_payment_id")
	if !ok {
		return
	}
	var patch domain.PaymentPatch
	if !bindJSON(c, &patch, "invalid_payment_data") {
		return
	}
	if _, aerr := ownedPayment(c, h.payments, owner, id); aerr != nil {
		response.RespondAPIError(c, aerr)
		return
	}
	if aerr := h.references(c, owner, patch.ClientID, patch.ProjectID.Value); aerr != nil {
		response.RespondAPIError(c, aerr)
		return
	}
	row, err := h.payments.Update(c.Request.Context(), id, patch)
	if err != nil {
		logError(h.log, c, "UpdatePayment failed", "error", err, "payment_id", id)
		response.RespondAPIError(c, apierr.Internal("update_payment_failed", err))
		return
	}
	if row == nil {
		response.RespondAPIError(c, apierr.NotFound("payment_not_found"))
		return
	}
	response.RespondOK(c, row)
}

// DELETE /api/payments/:id
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "invalid_payment_id")
	if !ok {
		return
	}
	if _, aerr := ownedPayment(c, h.payments, owner, id); aerr != nil {
		response.RespondAPIError(c, aerr)
		return
	}
	deleted, err := h.payments.Delete(c.Request.Context(), id)
	if err != nil {
		logError(h.log, c, "DeletePayment failed", "error", err, "payment_id", id)
		response.RespondAPIError(c, apierr.Internal("delete_payment_failed", err))
		return
	}
	if !deleted {
		response.RespondAPIError(c, apierr.NotFound("payment_not_found"))
		return
	}
	c.Status(http.StatusNoContent)
}
