package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/agencyhub-backend/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondAPIError writes a boundary error. Internal errors keep their code but hide the cause.
func RespondAPIError(c *gin.Context, err *apierr.Error) {
	if err == nil {
		err = apierr.Internal("internal_error", nil)
	}
	status := err.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		RespondError(c, status, err.Code, nil)
		return
	}
	RespondError(c, status, err.Code, err)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
