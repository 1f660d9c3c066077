package postalcode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"github.com/viccon/sturdyc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL  = "https://viacep.com.br/ws"
	DefaultCacheTTL = 24 * time.Hour

	cacheCapacity  = 10000
	cacheShards    = 10
	cacheEvictPct  = 10
	requestTimeout = 5 * time.Second
)

var ErrUnexpectedStatus = errors.New("unexpected postal code service status")

type viaCEPResponse struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	Erro        any    `json:"erro"`
}

// notFound reports ViaCEP's {"erro": true} answer; older versions send the string "true".
func (r viaCEPResponse) notFound() bool {
	switch v := r.Erro.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}

// ViaCEPClient resolves CEPs through ViaCEP. Successful lookups are cached; failures are not.
type ViaCEPClient struct {
	baseURL string
	http    *http.Client
	cache   *sturdyc.Client[entities.PostalAddress]
}

var _ interfaces.IPostalCodeLookup = (*ViaCEPClient)(nil)

func NewViaCEPClient(baseURL string, ttl time.Duration, httpClient *http.Client) *ViaCEPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   requestTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &ViaCEPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		cache:   sturdyc.New[entities.PostalAddress](cacheCapacity, cacheShards, ttl, cacheEvictPct),
	}
}

// Lookup expects the eight digits of the CEP.
func (c *ViaCEPClient) Lookup(ctx context.Context, zipCode string) (entities.PostalAddress, error) {
	return c.cache.GetOrFetch(ctx, zipCode, func(ctx context.Context) (entities.PostalAddress, error) {
		return c.fetch(ctx, zipCode)
	})
}

func (c *ViaCEPClient) fetch(ctx context.Context, zipCode string) (entities.PostalAddress, error) {
	url := fmt.Sprintf("%s/%s/json/", c.baseURL, zipCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entities.PostalAddress{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[postal-code][viacep] request failed zip=%s err=%v", zipCode, err)
		return entities.PostalAddress{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return entities.PostalAddress{}, interfaces.ErrPostalCodeNotFound
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[postal-code][viacep] unexpected status zip=%s status=%d", zipCode, resp.StatusCode)
		return entities.PostalAddress{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.PostalAddress{}, fmt.Errorf("decode viacep response: %w", err)
	}
	if body.notFound() {
		return entities.PostalAddress{}, interfaces.ErrPostalCodeNotFound
	}

	return entities.PostalAddress{
		ZipCode:      body.CEP,
		Street:       body.Logradouro,
		Complement:   body.Complemento,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		State:        body.UF,
	}, nil
}
