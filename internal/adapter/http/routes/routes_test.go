package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldservice/internal/bootstrap"
	"fieldservice/internal/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		SessionStore:       config.StoreMemory,
		PaymentsStore:      config.StoreMemory,
		PaymentGatewayMock: true,
		PasswordHashCost:   bcrypt.MinCost,
	}
	c, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return NewRouter(c, cfg)
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_PingAndSeededLists(t *testing.T) {
	r := newTestRouter(t)

	if w := do(t, r, http.MethodGet, "/v1/ping", nil); w.Code != http.StatusOK {
		t.Fatalf("ping: expected 200, got %d", w.Code)
	}

	tests := []struct {
		path string
		want int
	}{
		{"/v1/clients", 4},
		{"/v1/users", 5},
		{"/v1/products", 5},
		{"/v1/service-orders", 3},
		{"/v1/quotes", 2},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(t, r, http.MethodGet, tt.path, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}
			var items []json.RawMessage
			if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(items) != tt.want {
				t.Fatalf("expected %d items, got %d", tt.want, len(items))
			}
		})
	}
}

func TestRouter_Login(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/v1/auth/login", map[string]string{"username": "administrador", "password": "112233"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodPost, "/v1/auth/login", map[string]string{"username": "mariana", "password": "123"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for inactive user, got %d", w.Code)
	}
}

func TestRouter_QuoteLifecycleAndPayment(t *testing.T) {
	r := newTestRouter(t)

	// qt-002 is a draft: it cannot be paid until sent and accepted.
	if w := do(t, r, http.MethodPost, "/v1/quotes/qt-002/payments", nil); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 paying a draft, got %d: %s", w.Code, w.Body.String())
	}
	for _, step := range []string{"send", "accept"} {
		if w := do(t, r, http.MethodPatch, "/v1/quotes/qt-002/"+step, nil); w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", step, w.Code, w.Body.String())
		}
	}
	if w := do(t, r, http.MethodPatch, "/v1/quotes/qt-002/reject", nil); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 rejecting an accepted quote, got %d", w.Code)
	}

	w := do(t, r, http.MethodPost, "/v1/quotes/qt-002/payments", map[string]any{"transaction_amount": 600})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var paid struct {
		QuoteID string  `json:"quote_id"`
		Amount  float64 `json:"amount"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &paid); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if paid.QuoteID != "qt-002" || paid.Amount != 600 {
		t.Fatalf("unexpected payment %+v", paid)
	}

	if w := do(t, r, http.MethodGet, "/v1/quotes/qt-002/payments/latest", nil); w.Code != http.StatusOK {
		t.Fatalf("latest: expected 200, got %d", w.Code)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	r := newTestRouter(t)
	if w := do(t, r, http.MethodGet, "/v1/invoices", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
