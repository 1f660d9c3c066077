package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.APILatency != 200*time.Millisecond {
			t.Fatalf("expected 200ms latency, got %v", cfg.APILatency)
		}
		if cfg.SessionKey != "fieldservice_isLoggedIn" || cfg.PostalCodeBaseURL != "https://viacep.com.br/ws" {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		if cfg.UsesDynamoDB() {
			t.Fatalf("expected no dynamodb by default")
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("API_LATENCY", "0s")
		t.Setenv("SESSION_STORE", "dynamodb")
		t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
		t.Setenv("PAYMENT_GATEWAY_MOCK", "false")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.APILatency != 0 || !cfg.UsesDynamoDB() || cfg.PaymentGatewayMock {
			t.Fatalf("overrides not applied: %+v", cfg)
		}
		if cfg.DynamoDBEndpoint != "http://localhost:8000" {
			t.Fatalf("unexpected endpoint: %q", cfg.DynamoDBEndpoint)
		}
	})

	t.Run("invalid session store", func(t *testing.T) {
		t.Setenv("SESSION_STORE", "redis")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("POSTAL_CODE_CACHE_TTL", "forever")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})
}
