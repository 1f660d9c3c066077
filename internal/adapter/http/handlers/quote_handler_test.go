package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldservice/internal/adapter/http/handlers/mocks"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"
	"fieldservice/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"no items", usecase.ErrQuoteWithoutItems, http.StatusBadRequest},
		{"discount", usecase.ErrDiscountExceeds, http.StatusBadRequest},
		{"validity", usecase.ErrInvalidValidity, http.StatusBadRequest},
		{"invalid", fmt.Errorf("%w: qty", usecase.ErrInvalidQuote), http.StatusBadRequest},
		{"unknown client", interfaces.ErrReferenceNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIQuoteUseCase(ctrl)
			h := NewQuoteHandler(uc)

			r := gin.New()
			r.POST("/v1/quotes", h.CreateQuote)

			uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"clientId":"cli-1"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, q entities.Quote) (entities.Quote, error) {
			if len(q.Items) != 2 || !q.Discount.Equal(decimal.NewFromInt(5)) {
				t.Fatalf("unexpected quote passed to usecase: %+v", q)
			}
			q.ID = "qt-9"
			q.QuoteNumber = "ORC-0003"
			q.Status = entities.QuoteStatusDraft
			q.RecomputeTotals()
			return q, nil
		})

		body := `{"clientId":"cli-1","items":[{"description":"A","quantity":2,"unitPrice":10},{"quantity":1,"unitPrice":5}],"discount":5}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["quoteNumber"] != "ORC-0003" || got["total"] != 20.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_StatusChanges(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("send success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/send", h.SendQuote)

		uc.EXPECT().Send(gomock.Any(), "qt-002").Return(entities.Quote{ID: "qt-002", Status: entities.QuoteStatusSent}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/quotes/qt-002/send", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("accept invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/accept", h.AcceptQuote)

		uc.EXPECT().Accept(gomock.Any(), "qt-002").Return(entities.Quote{}, fmt.Errorf("%w: Rascunho -> Aceito", interfaces.ErrInvalidQuoteTransition))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/quotes/qt-002/accept", nil))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("reject not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/reject", h.RejectQuote)

		uc.EXPECT().Reject(gomock.Any(), "qt-404").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/quotes/qt-404/reject", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.GET("/v1/quotes", h.ListQuotes)
	r.GET("/v1/quotes/:id", h.GetQuote)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Quote{{ID: "qt-001"}}, nil)
	uc.EXPECT().GetByID(gomock.Any(), "qt-001").Return(entities.Quote{ID: "qt-001", QuoteNumber: "ORC-0001"}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes/qt-001", nil))
	var got map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if w.Code != http.StatusOK || got["quoteNumber"] != "ORC-0001" {
		t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
	}
}
