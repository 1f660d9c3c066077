package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Store backends for the logged-in flag and quote payments.
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StoreDynamoDB = "dynamodb"
)

// Config is read from the environment (a .env file is loaded by the binaries first).
type Config struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	APILatency      time.Duration `envconfig:"API_LATENCY" default:"200ms"`
	ReadTimeout     time.Duration `envconfig:"WEB_READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"WEB_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `envconfig:"WEB_IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `envconfig:"WEB_SHUTDOWN_TIMEOUT" default:"20s"`

	SessionStore string `envconfig:"SESSION_STORE" default:"file"`
	SessionFile  string `envconfig:"SESSION_FILE" default:".fieldservice/session.yaml"`
	SessionTable string `envconfig:"SESSION_TABLE" default:"sessions"`
	SessionKey   string `envconfig:"SESSION_KEY" default:"fieldservice_isLoggedIn"`

	PaymentsStore string `envconfig:"PAYMENTS_STORE" default:"memory"`
	PaymentsTable string `envconfig:"PAYMENTS_TABLE" default:"quote_payments"`

	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`

	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`

	PostalCodeBaseURL  string        `envconfig:"POSTAL_CODE_BASE_URL" default:"https://viacep.com.br/ws"`
	PostalCodeCacheTTL time.Duration `envconfig:"POSTAL_CODE_CACHE_TTL" default:"24h"`

	MercadoPagoAccessToken string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     bool   `envconfig:"PAYMENT_GATEWAY_MOCK" default:"true"`

	PasswordHashCost int `envconfig:"PASSWORD_HASH_COST" default:"10"`

	OTLPEndpoint     string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName      string  `envconfig:"OTEL_SERVICE_NAME" default:"fieldservice"`
	TraceSampleRatio float64 `envconfig:"OTEL_TRACES_SAMPLER_ARG" default:"1"`
}

// Load processes the environment into a Config and checks the enumerated settings.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("processing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.SessionStore {
	case StoreMemory, StoreFile, StoreDynamoDB:
	default:
		return fmt.Errorf("config: SESSION_STORE must be one of memory|file|dynamodb, got %q", c.SessionStore)
	}
	switch c.PaymentsStore {
	case StoreMemory, StoreDynamoDB:
	default:
		return fmt.Errorf("config: PAYMENTS_STORE must be one of memory|dynamodb, got %q", c.PaymentsStore)
	}
	if c.APILatency < 0 {
		return fmt.Errorf("config: API_LATENCY must not be negative")
	}
	return nil
}

// UsesDynamoDB reports whether any store needs a DynamoDB client.
func (c Config) UsesDynamoDB() bool {
	return c.SessionStore == StoreDynamoDB || c.PaymentsStore == StoreDynamoDB
}
