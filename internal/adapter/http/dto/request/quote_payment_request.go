package request

import "encoding/json"

// QuotePaymentCreateRequest is the payload for charging an accepted quote.
//
// `mp_payload` is forwarded as raw JSON so callers can add any Mercado Pago field
// (payment_method_id, token, installments, payer...). Amount and reference always come
// from the quote.
type QuotePaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
