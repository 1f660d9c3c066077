package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"
)

type fakeGenerator struct {
	text   string
	err    error
	model  string
	prompt string
	cfg    *genai.GenerateContentConfig
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.cfg = cfg
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{{Text: f.text}}}}},
	}, nil
}

func TestNewGeminiServiceRequestParser_NoKey(t *testing.T) {
	p, err := NewGeminiServiceRequestParser(context.Background(), " ", "")
	if err != nil || p != nil {
		t.Fatalf("expected nil parser without key, got %v %v", p, err)
	}
}

func TestGeminiServiceRequestParser_Parse(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		err     error
		want    string
		wantErr error
	}{
		{name: "ok", text: `{"serviceType":" Instalação de Câmeras ","notes":"4 câmeras externas"}`, want: "Instalação de Câmeras"},
		{name: "empty", text: "", wantErr: ErrEmptyModelResponse},
		{name: "not json", text: "claro!", wantErr: ErrInvalidModelResponse},
		{name: "missing type", text: `{"notes":"x"}`, wantErr: ErrInvalidModelResponse},
		{name: "transport", err: errors.New("quota"), wantErr: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{text: tt.text, err: tt.err}
			p := &GeminiServiceRequestParser{models: gen, model: DefaultModel}

			got, err := p.Parse(context.Background(), "preciso instalar 4 câmeras na frente de casa")
			switch {
			case tt.err != nil:
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected transport error, got %v", err)
				}
				return
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			case err != nil:
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ServiceType != tt.want || got.Notes != "4 câmeras externas" {
				t.Fatalf("unexpected result: %+v", got)
			}
			if gen.model != DefaultModel || gen.cfg.ResponseMIMEType != "application/json" || gen.cfg.ResponseSchema == nil {
				t.Fatalf("expected JSON schema request, got model=%s cfg=%+v", gen.model, gen.cfg)
			}
			if !strings.Contains(gen.prompt, "4 câmeras") {
				t.Fatalf("prompt must carry the description")
			}
		})
	}
}
