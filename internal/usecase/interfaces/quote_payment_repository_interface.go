package interfaces

import (
	"context"

	"fieldservice/internal/domain/entities"
)

// IQuotePaymentRepository abstracts persistence for QuotePayment.
type IQuotePaymentRepository interface {
	Create(ctx context.Context, p entities.QuotePayment) (entities.QuotePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error)
}
