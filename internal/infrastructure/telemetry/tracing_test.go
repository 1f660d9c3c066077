package telemetry

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace/noop"
)

func TestInitTracing_DisabledWithoutEndpoint(t *testing.T) {
	tp, teardown, err := InitTracing(context.Background(), Config{ServiceName: "fieldservice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := tp.(noop.TracerProvider); !ok {
		t.Fatalf("expected noop provider, got %T", tp)
	}
	if err := teardown(context.Background()); err != nil {
		t.Fatalf("unexpected teardown error: %v", err)
	}
}

func TestInitTracing_WithEndpoint(t *testing.T) {
	tp, teardown, err := InitTracing(context.Background(), Config{ServiceName: "fieldservice", Endpoint: "localhost:4317", Probability: 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tp == nil {
		t.Fatalf("expected provider")
	}
	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = teardown(ctx)
}

func TestSampler(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{0, "AlwaysOffSampler"},
		{-1, "AlwaysOffSampler"},
		{1, "AlwaysOnSampler"},
		{2, "AlwaysOnSampler"},
		{0.25, "TraceIDRatioBased{0.25}"},
	}
	for _, tt := range tests {
		got := sampler(tt.p).Description()
		want := "ParentBased{root:" + tt.want
		if len(got) < len(want) || got[:len(want)] != want {
			t.Fatalf("p=%v: expected prefix %q, got %q", tt.p, want, got)
		}
	}
}
