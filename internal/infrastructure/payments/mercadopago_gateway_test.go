package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway(GatewayConfig{})
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock ignores token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway(GatewayConfig{Mock: true})
		if err != nil || g == nil {
			t.Fatalf("expected mock gateway, got %v", err)
		}
	})
}

func TestMercadoPagoGateway_MockCreate(t *testing.T) {
	g, _ := NewMercadoPagoGateway(GatewayConfig{Mock: true})

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":5150,"external_reference":"ORC-0001"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" || status != "approved" {
		t.Fatalf("unexpected id/status: %q %q", id, status)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if body["external_reference"] != "ORC-0001" || body["status_detail"] != "accredited" {
		t.Fatalf("unexpected mock body: %v", body)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
