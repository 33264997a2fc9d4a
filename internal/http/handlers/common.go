package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/agencyhub-backend/internal/domain"
	"github.com/yungbote/agencyhub-backend/internal/http/response"
	"github.com/yungbote/agencyhub-backend/internal/platform/apierr"
	"github.com/yungbote/agencyhub-backend/internal/platform/ctxutil"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
	"github.com/yungbote/agencyhub-backend/internal/services"
)

var errBadID = errors.New("id must be a positive integer")

// logError logs a failed request with its request, trace and owner ids attached.
func logError(log *logger.Logger, c *gin.Context, msg string, keysAndValues ...interface{}) {
	log.Error(msg, append(keysAndValues, ctxutil.LogFields(c.Request.Context())...)...)
}

// requireOwner reads the authenticated owner. The auth middleware normally guarantees one.
func requireOwner(c *gin.Context) (string, bool) {
	owner := ctxutil.OwnerID(c.Request.Context())
	if owner == "" {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return "", false
	}
	return owner, true
}

func pathID(c *gin.Context, code string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		response.RespondAPIError(c, apierr.BadRequest(code, errBadID))
		return 0, false
	}
	return id, true
}

// bindJSON decodes and validates the body, then runs any extra domain checks.
func bindJSON(c *gin.Context, dst any, code string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.RespondAPIError(c, apierr.BadRequest(code, err))
		return false
	}
	if v, ok := dst.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			response.RespondAPIError(c, apierr.BadRequest(code, err))
			return false
		}
	}
	return true
}

// The lookups below treat another owner's record exactly like a missing one.

func ownedClient(c *gin.Context, clients services.ClientService, owner string, id int64) (*domain.Client, *apierr.Error) {
	row, err := clients.Get(c.Request.Context(), id)
	if err != nil {
		return nil, apierr.Internal("load_client_failed", err)
	}
	if row == nil || row.OwnerID != owner {
		return nil, apierr.NotFound("client_not_found")
	}
	return row, nil
}

func ownedProject(c *gin.Context, projects services.ProjectService, owner string, id int64) (*domain.Project, *apierr.Error) {
	row, err := projects.Get(c.Request.Context(), id)
	if err != nil {
		return nil, apierr.Internal("load_project_failed", err)
	}
	if row == nil || row.OwnerID != owner {
		return nil, apierr.NotFound("project_not_found")
	}
	return row, nil
}

func ownedPayment(c *gin.Context, payments services.PaymentService, owner string, id int64) (*domain.Payment, *apierr.Error) {
	row, err := payments.Get(c.Request.Context(), id)
	if err != nil {
		return nil, apierr.Internal("load_payment_failed", err)
	}
	if row == nil || row.OwnerID != owner {
		return nil, apierr.NotFound("payment_not_found")
	}
	return row, nil
}

// asReference turns a failed lookup of a referenced record into a validation error.
func asReference(err *apierr.Error) *apierr.Error {
	if err != nil && err.Status == http.StatusNotFound {
		return apierr.BadRequest(err.Code, err.Err)
	}
	return err
}
