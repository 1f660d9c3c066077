package entities

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus represents the lifecycle of a quote (orçamento).
//
// Quotes start as Rascunho, are sent to the client and then accepted or rejected:
//
//	Rascunho -> Enviado -> Aceito
//	                    -> Rejeitado
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "Rascunho"
	QuoteStatusSent     QuoteStatus = "Enviado"
	QuoteStatusAccepted QuoteStatus = "Aceito"
	QuoteStatusRejected QuoteStatus = "Rejeitado"
)

// QuoteNumberPrefix and QuoteNumberFormat define the human-facing quote sequence.
const (
	QuoteNumberPrefix = "ORC-"
	QuoteNumberFormat = QuoteNumberPrefix + "%04d"
)

// DefaultQuoteValidity is used when a quote is created without a validity date.
const DefaultQuoteValidity = 30 * 24 * time.Hour

var ErrInvalidQuoteNumber = errors.New("invalid quote number")

var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusDraft: {QuoteStatusSent},
	QuoteStatusSent:  {QuoteStatusAccepted, QuoteStatusRejected},
}

// CanTransitionTo reports whether a quote in status s may move to next.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	return slices.Contains(quoteTransitions[s], next)
}

type QuoteItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity" validate:"gt=0"`
	UnitPrice   decimal.Decimal `json:"unitPrice" validate:"gte=0"`
}

func (i QuoteItem) Amount() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// Quote is a price proposal sent to a client.
//
// Monetary representation:
//   - Amounts are decimal.Decimal so sums and differences are exact.
//   - Subtotal and Total are derived from Items and Discount by RecomputeTotals and are
//     persisted only as a convenience for readers; every write path recomputes them.
type Quote struct {
	ID                   string          `json:"id"`
	ClientID             string          `json:"clientId"`
	ClientName           string          `json:"clientName"`
	QuoteNumber          string          `json:"quoteNumber"`
	QuoteDate            time.Time       `json:"quoteDate"`
	ValidUntil           time.Time       `json:"validUntil"`
	Items                []QuoteItem     `json:"items" validate:"dive"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	Discount             decimal.Decimal `json:"discount" validate:"gte=0"`
	Total                decimal.Decimal `json:"total"`
	Observations         string          `json:"observations"`
	CommercialConditions string          `json:"commercialConditions"`
	Status               QuoteStatus     `json:"status"`
}

// RecomputeTotals sets Subtotal to the exact sum of quantity*unitPrice and Total to
// Subtotal-Discount.
func (q *Quote) RecomputeTotals() {
	subtotal := decimal.Zero
	for _, it := range q.Items {
		subtotal = subtotal.Add(it.Amount())
	}
	q.Subtotal = subtotal
	q.Total = subtotal.Sub(q.Discount)
}

func (q Quote) Validate() error {
	return validate.Struct(q)
}

func (q Quote) Clone() Quote {
	out := q
	out.Items = slices.Clone(q.Items)
	return out
}

func FormatQuoteNumber(seq int) string {
	return fmt.Sprintf(QuoteNumberFormat, seq)
}

// ParseQuoteNumber extracts the sequence from an ORC-#### number.
func ParseQuoteNumber(number string) (int, error) {
	digits, ok := strings.CutPrefix(number, QuoteNumberPrefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuoteNumber, number)
	}
	seq, err := strconv.Atoi(digits)
	if err != nil || seq <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuoteNumber, number)
	}
	return seq, nil
}
