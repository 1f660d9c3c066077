package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
		if e.HTTPStatus != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", e.HTTPStatus)
		}
		if e.Error() != "CLIENT_NOT_FOUND: Client not found" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
		if e.Unwrap() != nil {
			t.Fatalf("expected no cause")
		}
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("db")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to be unwrapped")
		}
		body := e.ToHTTPError()
		if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}
