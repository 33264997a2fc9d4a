package ctxutil

import (
	"context"
	"reflect"
	"testing"
)

func TestOwnerID(t *testing.T) {
	t.Parallel()

	if got := OwnerID(context.Background()); got != "" {
		t.Fatalf("anonymous owner: got=%q", got)
	}
	ctx := WithRequestData(context.Background(), &RequestData{OwnerID: " acct-1 "})
	if got := OwnerID(ctx); got != "acct-1" {
		t.Fatalf("owner: got=%q", got)
	}
}

func TestWithOwnerKeepsIDs(t *testing.T) {
	t.Parallel()

	base := &RequestData{RequestID: "r", TraceID: "t"}
	ctx := WithOwner(WithRequestData(context.Background(), base), "acct-2")

	rd := GetRequestData(ctx)
	if rd == nil || rd.RequestID != "r" || rd.TraceID != "t" || rd.OwnerID != "acct-2" {
		t.Fatalf("request data: %+v", rd)
	}
	if base.OwnerID != "" {
		t.Fatalf("original request data mutated: %+v", base)
	}
	if got := OwnerID(WithOwner(context.Background(), "solo")); got != "solo" {
		t.Fatalf("owner without ids: got=%q", got)
	}
}

func TestLogFields(t *testing.T) {
	t.Parallel()

	if got := LogFields(context.Background()); got != nil {
		t.Fatalf("expected no fields, got %v", got)
	}
	ctx := WithRequestData(context.Background(), &RequestData{RequestID: "r", OwnerID: "acct"})
	want := []interface{}{"request_id", "r", "owner_id", "acct"}
	if got := LogFields(ctx); !reflect.DeepEqual(got, want) {
		t.Fatalf("fields: want=%v got=%v", want, got)
	}
}
