package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/infrastructure/telemetry"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func stubTracing(t *testing.T) *int {
	t.Helper()
	calls := 0
	orig := initTracing
	initTracing = func(context.Context, telemetry.Config) (trace.TracerProvider, telemetry.Teardown, error) {
		return noop.NewTracerProvider(), func(context.Context) error {
			calls++
			return nil
		}, nil
	}
	t.Cleanup(func() { initTracing = orig })
	t.Setenv("SESSION_STORE", "memory")
	t.Setenv("API_LATENCY", "0s")
	t.Setenv("PASSWORD_HASH_COST", "4")
	return &calls
}

func TestRun_ExitCodes(t *testing.T) {
	t.Run("no command", func(t *testing.T) {
		if code := run(nil); code != 2 {
			t.Fatalf("expected 2, got %d", code)
		}
	})

	t.Run("failing command still tears tracing down", func(t *testing.T) {
		calls := stubTracing(t)
		if code := run([]string{"summary"}); code != 1 {
			t.Fatalf("expected 1, got %d", code)
		}
		if *calls != 1 {
			t.Fatalf("expected teardown once, got %d", *calls)
		}
	})

	t.Run("unknown command still tears tracing down", func(t *testing.T) {
		calls := stubTracing(t)
		if code := run([]string{"invoices"}); code != 2 {
			t.Fatalf("expected 2, got %d", code)
		}
		if *calls != 1 {
			t.Fatalf("expected teardown once, got %d", *calls)
		}
	})

	t.Run("logout succeeds", func(t *testing.T) {
		calls := stubTracing(t)
		if code := run([]string{"logout"}); code != 0 {
			t.Fatalf("expected 0, got %d", code)
		}
		if *calls != 1 {
			t.Fatalf("expected teardown once, got %d", *calls)
		}
	})
}

func TestRenderQuotes(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if out := renderQuotes(nil); !strings.Contains(out, "(none)") {
			t.Fatalf("expected placeholder, got %q", out)
		}
	})

	t.Run("money is printed with two decimals", func(t *testing.T) {
		out := renderQuotes([]entities.Quote{{
			QuoteNumber: "ORC-2024-001",
			ClientName:  "Empresa Alpha",
			ValidUntil:  time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
			Total:       decimal.RequireFromString("0.3"),
			Status:      entities.QuoteStatusDraft,
		}})
		for _, want := range []string{"TOTAL", "ORC-2024-001", "15/07/2024", "0.30", "Rascunho"} {
			if !strings.Contains(out, want) {
				t.Fatalf("expected %q in %q", want, out)
			}
		}
	})
}

func TestRenderProducts(t *testing.T) {
	out := renderProducts([]entities.Product{{
		SKU:             "CAB-001",
		Name:            "Cabo",
		Category:        entities.ProductCategoryNetworks,
		UnitOfMeasure:   entities.UnitOfMeasureMeter,
		QuantityInStock: 500,
		SellingPrice:    decimal.RequireFromString("3.5"),
	}})
	for _, want := range []string{"PRICE", "CAB-001", "Redes", "3.50"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}
