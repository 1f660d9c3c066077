package localstate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoginFlagFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file means logged out", func(t *testing.T) {
		s := NewLoginFlagFileStore(filepath.Join(t.TempDir(), "state.yaml"), "")
		ok, err := s.IsLoggedIn(ctx)
		if err != nil || ok {
			t.Fatalf("expected logged out, got %v %v", ok, err)
		}
	})

	t.Run("survives a new instance", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "state.yaml")
		if err := NewLoginFlagFileStore(path, "").SetLoggedIn(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ok, err := NewLoginFlagFileStore(path, "").IsLoggedIn(ctx)
		if err != nil || !ok {
			t.Fatalf("expected logged in, got %v %v", ok, err)
		}
		data, _ := os.ReadFile(path)
		if !strings.Contains(string(data), DefaultKey) {
			t.Fatalf("expected key in file, got %q", data)
		}
	})

	t.Run("clear keeps unrelated keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.yaml")
		if err := os.WriteFile(path, []byte("theme: dark\n"), 0o600); err != nil {
			t.Fatalf("seed file: %v", err)
		}
		s := NewLoginFlagFileStore(path, "")
		_ = s.SetLoggedIn(ctx)
		if err := s.Clear(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ok, _ := s.IsLoggedIn(ctx)
		if ok {
			t.Fatalf("expected logged out after clear")
		}
		data, _ := os.ReadFile(path)
		if !strings.Contains(string(data), "theme: dark") {
			t.Fatalf("unrelated key lost: %q", data)
		}
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.yaml")
		_ = os.WriteFile(path, []byte("- a\n- b\n"), 0o600)
		_, err := NewLoginFlagFileStore(path, "").IsLoggedIn(ctx)
		if err == nil {
			t.Fatalf("expected parse error")
		}
	})
}
