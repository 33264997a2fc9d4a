package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yungbote/agencyhub-backend/internal/domain"
	"github.com/yungbote/agencyhub-backend/internal/platform/ctxutil"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
	"github.com/yungbote/agencyhub-backend/internal/services"
)

type brokenClients struct {
	services.ClientService
}

func (brokenClients) List(context.Context, string) ([]*domain.Client, error) {
	return nil, errors.New("connection reset")
}

func TestErrorLogCarriesRequestScope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.ErrorLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}
	h := NewClientHandler(log, brokenClients{}, nil, nil)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		ctx := ctxutil.WithRequestData(c.Request.Context(), &ctxutil.RequestData{
			RequestID: "req-5",
			TraceID:   "trace-5",
			OwnerID:   "acct",
		})
		c.Request = c.Request.WithContext(ctx)
	})
	r.GET("/api/clients", h.ListClients)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/clients", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got=%d", rec.Code)
	}
	entries := logs.FilterMessage("ListClients failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one error log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["request_id"] != "req-5" || fields["trace_id"] != "trace-5" {
		t.Fatalf("missing correlation ids: %v", fields)
	}
	if _, ok := fields["owner_id"]; !ok {
		t.Fatalf("missing owner_id: %v", fields)
	}
}
