package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/agencyhub-backend/internal/platform/ctxutil"
)

const (
	headerTraceID   = "X-Trace-Id"
	headerRequestID = "X-Request-Id"
)

// AttachRequestData opens the request scope. The trace id prefers the caller's header, then the
// active otel span, then a fresh uuid; both ids are echoed back as response headers.
func AttachRequestData() gin.HandlerFunc {
	return func(c *gin.Context) {
		rd := &ctxutil.RequestData{
			RequestID: strings.TrimSpace(c.GetHeader(headerRequestID)),
			TraceID:   strings.TrimSpace(c.GetHeader(headerTraceID)),
		}
		if rd.RequestID == "" {
			rd.RequestID = uuid.NewString()
		}
		if rd.TraceID == "" {
			if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
				rd.TraceID = sc.TraceID().String()
			} else {
				rd.TraceID = uuid.NewString()
			}
		}
		c.Request = c.Request.WithContext(ctxutil.WithRequestData(c.Request.Context(), rd))
		c.Header(headerTraceID, rd.TraceID)
		c.Header(headerRequestID, rd.RequestID)
		c.Next()
	}
}
