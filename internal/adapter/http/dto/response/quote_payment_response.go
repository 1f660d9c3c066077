package response

import (
	"fieldservice/internal/domain/entities"
	"time"
)

type QuotePaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	QuoteID     string    `json:"quote_id"`
	QuoteNumber string    `json:"quote_number"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromQuotePayment(p entities.QuotePayment) QuotePaymentResponse {
	return QuotePaymentResponse{
		PaymentID:    p.ID,
		QuoteID:      p.QuoteID,
		QuoteNumber:  p.QuoteNumber,
		Amount:       p.Amount,
		PaymentDate:  p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromQuotePayments(ps []entities.QuotePayment) []QuotePaymentResponse {
	out := make([]QuotePaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromQuotePayment(p))
	}
	return out
}
