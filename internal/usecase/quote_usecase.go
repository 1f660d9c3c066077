package usecase

import (
	"context"
	"errors"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
	"fmt"
	"log"
	"strings"
	"time"
)

var (
	ErrInvalidQuote      = errors.New("invalid quote")
	ErrQuoteWithoutItems = errors.New("quote must have at least one item")
	ErrDiscountExceeds   = errors.New("discount exceeds subtotal")
	ErrInvalidValidity   = errors.New("validity date precedes quote date")
	ErrInvalidQuoteID    = errors.New("invalid quote id")
	ErrQuoteNotFound     = errors.New("quote not found")
)

// IQuoteUseCase exposes quote (orçamento) operations.
//
// Lifecycle:
//   - Create => Rascunho
//   - Send   => Rascunho -> Enviado
//   - Accept => Enviado  -> Aceito
//   - Reject => Enviado  -> Rejeitado
type IQuoteUseCase interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Send(ctx context.Context, id string) (entities.Quote, error)
	Accept(ctx context.Context, id string) (entities.Quote, error)
	Reject(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	store interfaces.IRecordStore
	now   func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(store interfaces.IRecordStore) *QuoteUseCase {
	return &QuoteUseCase{store: store, now: time.Now}
}

func (u *QuoteUseCase) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q = q.Clone()
	q.ClientID = strings.TrimSpace(q.ClientID)
	if len(q.Items) == 0 {
		return entities.Quote{}, ErrQuoteWithoutItems
	}
	for i := range q.Items {
		q.Items[i].Description = strings.TrimSpace(q.Items[i].Description)
	}

	if q.QuoteDate.IsZero() {
		q.QuoteDate = u.now()
	}
	if q.ValidUntil.IsZero() {
		q.ValidUntil = q.QuoteDate.Add(entities.DefaultQuoteValidity)
	}
	if q.ValidUntil.Before(q.QuoteDate) {
		return entities.Quote{}, fmt.Errorf("%w: %w", ErrInvalidQuote, ErrInvalidValidity)
	}

	if err := q.Validate(); err != nil {
		return entities.Quote{}, fmt.Errorf("%w: %w", ErrInvalidQuote, err)
	}
	q.RecomputeTotals()
	if q.Discount.GreaterThan(q.Subtotal) {
		return entities.Quote{}, fmt.Errorf("%w: %w", ErrInvalidQuote, ErrDiscountExceeds)
	}

	q.ID = ""
	q.QuoteNumber = ""
	q.ClientName = ""
	q.Status = ""
	created, err := u.store.CreateQuote(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] create failed client_id=%s err=%v", q.ClientID, err)
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] created id=%s number=%s total=%s", created.ID, created.QuoteNumber, created.Total.StringFixed(2))
	return created, nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.store.ListQuotes(ctx)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.store.GetQuoteByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) Send(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatus(ctx, id, entities.QuoteStatusSent)
}

func (u *QuoteUseCase) Accept(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatus(ctx, id, entities.QuoteStatusAccepted)
}

func (u *QuoteUseCase) Reject(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatus(ctx, id, entities.QuoteStatusRejected)
}

func (u *QuoteUseCase) updateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.store.UpdateQuoteStatus(ctx, id, status)
	if err != nil {
		log.Printf("[quote][usecase] status update failed id=%s to=%s err=%v", id, status, err)
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] status updated id=%s number=%s status=%s", q.ID, q.QuoteNumber, q.Status)
	return q, nil
}
