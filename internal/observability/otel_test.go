package observability

import (
	"context"
	"reflect"
	"testing"

	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
)

func TestParseHeaders(t *testing.T) {
	t.Parallel()
	got := ParseHeaders(" api-key = abc ,broken, =x, env=prod")
	want := map[string]string{"api-key": "abc", "env": "prod"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseHeaders: want=%v got=%v", want, got)
	}
	if ParseHeaders("") != nil {
		t.Fatalf("ParseHeaders empty: expected nil")
	}
}

func TestInitOTelDisabledIsNoop(t *testing.T) {
	shutdown := InitOTel(context.Background(), logger.Nop(), OtelConfig{Enabled: false})
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	ctx, span := StartSpan(context.Background(), "test")
	defer span.End()
	if ctx == nil {
		t.Fatalf("StartSpan returned nil context")
	}
}

func TestClampRatio(t *testing.T) {
	t.Parallel()
	for in, want := range map[float64]float64{-1: 0, 0.25: 0.25, 3: 1} {
		if got := clampRatio(in); got != want {
			t.Fatalf("clampRatio(%v): want=%v got=%v", in, want, got)
		}
	}
}
