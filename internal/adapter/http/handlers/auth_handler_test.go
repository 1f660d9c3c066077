package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldservice/internal/adapter/http/handlers/mocks"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		body    string
		err     error
		code    int
		message string
	}{
		{name: "missing", body: `{}`, err: interfaces.ErrMissingCredentials, code: http.StatusBadRequest, message: "username and password are required"},
		{name: "invalid", body: `{"username":"x","password":"y"}`, err: interfaces.ErrInvalidCredentials, code: http.StatusUnauthorized, message: "invalid username or password"},
		{name: "inactive", body: `{"username":"mariana","password":"123"}`, err: interfaces.ErrUserInactive, code: http.StatusForbidden, message: "user is inactive and cannot access the system"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIUserUseCase(ctrl)
			h := NewAuthHandler(uc)

			r := gin.New()
			r.POST("/v1/auth/login", h.Login)

			uc.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.User{}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, w.Code)
			}
			var body map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body["message"] != tt.message {
				t.Fatalf("unexpected message: %s", w.Body.String())
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		uc.EXPECT().Authenticate(gomock.Any(), "administrador", "112233").Return(entities.User{ID: "user-admin", Username: "administrador", Role: entities.UserRoleAdmin}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"username":"administrador","password":"112233"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			User struct {
				ID string `json:"id"`
			} `json:"user"`
			IsLoggedIn bool `json:"isLoggedIn"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.User.ID != "user-admin" || !body.IsLoggedIn {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		if got := mapAuthError(errors.New("boom")); got.HTTPStatus != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", got.HTTPStatus)
		}
	})
}
