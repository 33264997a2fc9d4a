package ctxutil

import (
	"context"
	"strings"
)

type requestDataKey struct{}

// RequestData is the per-request scope: ids for correlating logs and traces, and the caller once
// auth has run. OwnerID scopes every read and write.
type RequestData struct {
	RequestID string
	TraceID   string
	OwnerID   string
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(requestDataKey{}).(*RequestData); ok {
		return rd
	}
	return nil
}

// WithOwner returns a context whose request data carries owner. Existing ids are kept; the
// stored value is copied, never mutated.
func WithOwner(ctx context.Context, owner string) context.Context {
	var next RequestData
	if rd := GetRequestData(ctx); rd != nil {
		next = *rd
	}
	next.OwnerID = strings.TrimSpace(owner)
	return WithRequestData(ctx, &next)
}

// OwnerID returns the caller's owner key, or "" when the request is anonymous.
func OwnerID(ctx context.Context) string {
	rd := GetRequestData(ctx)
	if rd == nil {
		return ""
	}
	return strings.TrimSpace(rd.OwnerID)
}

// LogFields returns the request's correlation fields as logger key/value pairs.
func LogFields(ctx context.Context) []interface{} {
	rd := GetRequestData(ctx)
	if rd == nil {
		return nil
	}
	var out []interface{}
	if rd.RequestID != "" {
		out = append(out, "request_id", rd.RequestID)
	}
	if rd.TraceID != "" {
		out = append(out, "trace_id", rd.TraceID)
	}
	if rd.OwnerID != "" {
		out = append(out, "owner_id", rd.OwnerID)
	}
	return out
}
