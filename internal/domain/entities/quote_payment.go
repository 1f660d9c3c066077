package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// QuotePayment records a payment charged for an accepted quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// Amount is the quote total as charged through the provider, whose API takes float amounts.
// MPPayloadRaw keeps the provider response body as received; MPPayload is its parsed form.
type QuotePayment struct {
	ID          string        `json:"id"`
	QuoteID     string        `json:"quote_id"`
	QuoteNumber string        `json:"quote_number"`
	Amount      float64       `json:"amount"`
	Date        time.Time     `json:"date"`
	Status      PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

// PaymentStatusFromProvider maps a Mercado Pago status string.
func PaymentStatusFromProvider(status string) PaymentStatus {
	switch status {
	case "approved", "authorized":
		return PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusNegado
	default:
		return PaymentStatusPendente
	}
}
