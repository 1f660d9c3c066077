package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"fieldservice/internal/adapter/persistence/memory"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
	mock_interfaces "fieldservice/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestQuoteUseCase_CreateValidations(t *testing.T) {
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	item := entities.QuoteItem{Description: "Visita", Quantity: dec("1"), UnitPrice: dec("100")}

	cases := []struct {
		name string
		q    entities.Quote
		want error
	}{
		{name: "no items", q: entities.Quote{ClientID: "cli-1"}, want: ErrQuoteWithoutItems},
		{name: "zero quantity", q: entities.Quote{ClientID: "cli-1", Items: []entities.QuoteItem{{Quantity: dec("0"), UnitPrice: dec("1")}}}, want: ErrInvalidQuote},
		{name: "negative price", q: entities.Quote{ClientID: "cli-1", Items: []entities.QuoteItem{{Quantity: dec("1"), UnitPrice: dec("-1")}}}, want: ErrInvalidQuote},
		{name: "negative discount", q: entities.Quote{ClientID: "cli-1", Items: []entities.QuoteItem{item}, Discount: dec("-5")}, want: ErrInvalidQuote},
		{name: "discount above subtotal", q: entities.Quote{ClientID: "cli-1", Items: []entities.QuoteItem{item}, Discount: dec("101")}, want: ErrDiscountExceeds},
		{name: "validity before date", q: entities.Quote{ClientID: "cli-1", Items: []entities.QuoteItem{item}, QuoteDate: base, ValidUntil: base.AddDate(0, 0, -1)}, want: ErrInvalidValidity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewQuoteUseCase(nil)
			_, err := uc.Create(context.Background(), tc.q)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestQuoteUseCase_CreateDefaultsAndTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIRecordStore(ctrl)
	uc := NewQuoteUseCase(store)
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	store.EXPECT().CreateQuote(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
		func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			if !q.QuoteDate.Equal(now) || !q.ValidUntil.Equal(now.Add(entities.DefaultQuoteValidity)) {
				t.Fatalf("unexpected dates: %v %v", q.QuoteDate, q.ValidUntil)
			}
			if !q.Subtotal.Equal(dec("150")) || !q.Total.Equal(dec("140")) {
				t.Fatalf("unexpected totals: %v %v", q.Subtotal, q.Total)
			}
			if q.QuoteNumber != "" || q.Status != "" {
				t.Fatalf("caller-supplied derived fields must be dropped: %+v", q)
			}
			return q, nil
		},
	)

	_, err := uc.Create(context.Background(), entities.Quote{
		ClientID:    " cli-1 ",
		QuoteNumber: "ORC-9999",
		Status:      entities.QuoteStatusAccepted,
		Items:       []entities.QuoteItem{{Quantity: dec("3"), UnitPrice: dec("50")}},
		Discount:    dec("10"),
		Subtotal:    dec("1"),
		Total:       dec("1"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQuoteUseCase_EndToEnd(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRecordStore()
	clients := NewClientUseCase(store)
	quotes := NewQuoteUseCase(store)

	c, err := clients.Create(ctx, entities.NewOrganizationClient("", entities.Address{}, entities.ClientOrganization{LegalName: "Loja Azul"}))
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	q, err := quotes.Create(ctx, entities.Quote{
		ClientID: c.ID,
		Items: []entities.QuoteItem{
			{Quantity: dec("2"), UnitPrice: dec("100")},
			{Quantity: dec("1"), UnitPrice: dec("50")},
		},
		Discount: dec("20"),
	})
	if err != nil {
		t.Fatalf("create quote: %v", err)
	}
	if !q.Subtotal.Equal(dec("250")) || !q.Total.Equal(dec("230")) || q.Status != entities.QuoteStatusDraft {
		t.Fatalf("unexpected quote: %+v", q)
	}
	if !regexp.MustCompile(`^ORC-\d{4}$`).MatchString(q.QuoteNumber) {
		t.Fatalf("unexpected quote number %q", q.QuoteNumber)
	}
	if q.ClientName != "Loja Azul" {
		t.Fatalf("unexpected client name %q", q.ClientName)
	}

	_, err = quotes.Create(ctx, entities.Quote{ClientID: "cli-missing", Items: []entities.QuoteItem{{Quantity: dec("1")}}})
	if !errors.Is(err, interfaces.ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}
	all, _ := quotes.List(ctx)
	if len(all) != 1 {
		t.Fatalf("failed create must not mutate the store, got %d quotes", len(all))
	}
}

func TestQuoteUseCase_Transitions(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRecordStore()
	clients := NewClientUseCase(store)
	quotes := NewQuoteUseCase(store)
	c, _ := clients.Create(ctx, entities.NewIndividualClient("", entities.Address{}, entities.ClientIndividual{FullName: "Bia"}))
	q, _ := quotes.Create(ctx, entities.Quote{ClientID: c.ID, Items: []entities.QuoteItem{{Quantity: dec("1"), UnitPrice: dec("10")}}})

	if _, err := quotes.Accept(ctx, q.ID); !errors.Is(err, interfaces.ErrInvalidQuoteTransition) {
		t.Fatalf("expected draft->accepted to fail, got %v", err)
	}
	sent, err := quotes.Send(ctx, q.ID)
	if err != nil || sent.Status != entities.QuoteStatusSent {
		t.Fatalf("unexpected send result err=%v q=%+v", err, sent)
	}
	rejected, err := quotes.Reject(ctx, q.ID)
	if err != nil || rejected.Status != entities.QuoteStatusRejected {
		t.Fatalf("unexpected reject result err=%v q=%+v", err, rejected)
	}
	if _, err := quotes.Accept(ctx, q.ID); !errors.Is(err, interfaces.ErrInvalidQuoteTransition) {
		t.Fatalf("expected rejected->accepted to fail, got %v", err)
	}

	if _, err := quotes.Send(ctx, "qt-missing"); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
	if _, err := quotes.Send(ctx, " "); !errors.Is(err, ErrInvalidQuoteID) {
		t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
	}
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIRecordStore(ctrl)
	uc := NewQuoteUseCase(store)

	store.EXPECT().GetQuoteByID(gomock.Any(), "qt-1").Return(entities.Quote{}, nil)
	if _, err := uc.GetByID(context.Background(), "qt-1"); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}

	store.EXPECT().GetQuoteByID(gomock.Any(), "qt-2").Return(entities.Quote{}, errors.New("db"))
	if _, err := uc.GetByID(context.Background(), "qt-2"); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}
