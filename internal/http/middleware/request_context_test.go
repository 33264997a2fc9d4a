package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/agencyhub-backend/internal/platform/ctxutil"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
)

func TestAttachRequestDataEchoesIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachRequestData())
	var seen ctxutil.RequestData
	r.GET("/healthcheck", func(c *gin.Context) {
		if rd := ctxutil.GetRequestData(c.Request.Context()); rd != nil {
			seen = *rd
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set("X-Request-Id", "req-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if seen.RequestID != "req-1" || seen.TraceID == "" || seen.OwnerID != "" {
		t.Fatalf("unexpected request data: %+v", seen)
	}
	if got := rec.Header().Get("X-Request-Id"); got != "req-1" {
		t.Fatalf("X-Request-Id: got=%q", got)
	}
	if got := rec.Header().Get("X-Trace-Id"); got != seen.TraceID {
		t.Fatalf("X-Trace-Id: want=%q got=%q", seen.TraceID, got)
	}
}

func TestRequireAuthJoinsRequestScope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const secret = "scope-secret"
	token, err := SignOwnerToken(secret, "owner-9", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	r := gin.New()
	r.Use(AttachRequestData(), NewAuthMiddleware(logger.Nop(), secret).RequireAuth())
	var seen ctxutil.RequestData
	r.GET("/api/clients", func(c *gin.Context) {
		if rd := ctxutil.GetRequestData(c.Request.Context()); rd != nil {
			seen = *rd
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.Header.Set("X-Request-Id", "req-2")
	req.Header.Set("X-Trace-Id", "trace-2")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d body=%s", rec.Code, rec.Body.String())
	}
	want := ctxutil.RequestData{RequestID: "req-2", TraceID: "trace-2", OwnerID: "owner-9"}
	if seen != want {
		t.Fatalf("request data: want=%+v got=%+v", want, seen)
	}
}
