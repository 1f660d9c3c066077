package memory

import (
	"context"
	"sync"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
)

// QuotePaymentRepository keeps payments in memory, in insertion order.
type QuotePaymentRepository struct {
	mu       sync.RWMutex
	payments []entities.QuotePayment
}

var _ interfaces.IQuotePaymentRepository = (*QuotePaymentRepository)(nil)

func NewQuotePaymentRepository() *QuotePaymentRepository {
	return &QuotePaymentRepository{}
}

func (r *QuotePaymentRepository) Create(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = append(r.payments, p)
	return p, nil
}

func (r *QuotePaymentRepository) ListByQuoteID(_ context.Context, quoteID string) ([]entities.QuotePayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.QuotePayment, 0)
	for _, p := range r.payments {
		if p.QuoteID == quoteID {
			out = append(out, p)
		}
	}
	return out, nil
}
