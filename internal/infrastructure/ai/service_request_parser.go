package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

var (
	ErrEmptyModelResponse   = errors.New("model returned an empty response")
	ErrInvalidModelResponse = errors.New("model returned an invalid response")
)

const parsePrompt = `Você é um assistente de uma empresa de serviços de campo (TI, redes, telefonia e segurança eletrônica).
Leia a solicitação do cliente abaixo e extraia:
- serviceType: um título curto para o tipo de serviço (ex.: "Instalação de Câmeras").
- notes: as observações técnicas relevantes para o técnico, em português.

Solicitação:
%s`

// generator is the slice of the genai client the parser calls.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiServiceRequestParser extracts a service type and notes from free text using a
// Gemini model constrained to a JSON schema.
type GeminiServiceRequestParser struct {
	models generator
	model  string
}

var _ interfaces.IServiceRequestParser = (*GeminiServiceRequestParser)(nil)

// NewGeminiServiceRequestParser returns nil, nil when apiKey is empty: the parser is optional.
func NewGeminiServiceRequestParser(ctx context.Context, apiKey, model string) (*GeminiServiceRequestParser, error) {
	if strings.TrimSpace(apiKey) == "" {
		log.Printf("[service-order][parser] GEMINI_API_KEY not set, parsing disabled")
		return nil, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("[service-order][parser] failed creating genai client err=%v", err)
		return nil, err
	}
	if model == "" {
		model = DefaultModel
	}
	log.Printf("[service-order][parser] Gemini parser initialized model=%s", model)
	return &GeminiServiceRequestParser{models: client.Models, model: model}, nil
}

func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"serviceType": {Type: genai.TypeString, Description: "Tipo de serviço, curto"},
			"notes":       {Type: genai.TypeString, Description: "Observações técnicas"},
		},
		Required: []string{"serviceType", "notes"},
	}
}

func (p *GeminiServiceRequestParser) Parse(ctx context.Context, description string) (entities.ParsedServiceRequest, error) {
	resp, err := p.models.GenerateContent(ctx, p.model, genai.Text(fmt.Sprintf(parsePrompt, description)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
	})
	if err != nil {
		return entities.ParsedServiceRequest{}, err
	}

	raw := responseText(resp)
	if raw == "" {
		return entities.ParsedServiceRequest{}, ErrEmptyModelResponse
	}

	var parsed entities.ParsedServiceRequest
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return entities.ParsedServiceRequest{}, fmt.Errorf("%w: %w", ErrInvalidModelResponse, err)
	}
	parsed.ServiceType = strings.TrimSpace(parsed.ServiceType)
	parsed.Notes = strings.TrimSpace(parsed.Notes)
	if parsed.ServiceType == "" {
		return entities.ParsedServiceRequest{}, fmt.Errorf("%w: missing serviceType", ErrInvalidModelResponse)
	}
	return parsed, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}
