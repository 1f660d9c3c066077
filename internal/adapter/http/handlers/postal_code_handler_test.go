package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldservice/internal/adapter/http/handlers/mocks"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"
	"fieldservice/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPostalCodeHandler_LookupPostalCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"found", nil, http.StatusOK},
		{"invalid", usecase.ErrInvalidZipCode, http.StatusBadRequest},
		{"not found", interfaces.ErrPostalCodeNotFound, http.StatusNotFound},
		{"unavailable", usecase.ErrPostalLookupUnavailable, http.StatusServiceUnavailable},
		{"upstream", errors.New("timeout"), http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPostalCodeUseCase(ctrl)
			h := NewPostalCodeHandler(uc)

			r := gin.New()
			r.GET("/v1/postal-codes/:zip", h.LookupPostalCode)

			uc.EXPECT().Lookup(gomock.Any(), "01001-000").Return(entities.PostalAddress{ZipCode: "01001-000", City: "São Paulo"}, tt.err)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/postal-codes/01001-000", nil))
			if w.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, w.Code)
			}
		})
	}
}
