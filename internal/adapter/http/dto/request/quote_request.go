package request

import (
	"fieldservice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type QuoteItemRequest struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// QuoteRequest omits number, client name, status and totals: the server derives them.
type QuoteRequest struct {
	ClientID             string             `json:"clientId" binding:"required"`
	QuoteDate            string             `json:"quoteDate"`
	ValidUntil           string             `json:"validUntil"`
	Items                []QuoteItemRequest `json:"items"`
	Discount             decimal.Decimal    `json:"discount"`
	Observations         string             `json:"observations"`
	CommercialConditions string             `json:"commercialConditions"`
}

func (r QuoteRequest) ToEntity() (entities.Quote, error) {
	quoteDate, err := ParseDate(r.QuoteDate)
	if err != nil {
		return entities.Quote{}, err
	}
	validUntil, err := ParseDate(r.ValidUntil)
	if err != nil {
		return entities.Quote{}, err
	}
	items := make([]entities.QuoteItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.QuoteItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return entities.Quote{
		ClientID:             r.ClientID,
		QuoteDate:            quoteDate,
		ValidUntil:           validUntil,
		Items:                items,
		Discount:             r.Discount,
		Observations:         r.Observations,
		CommercialConditions: r.CommercialConditions,
	}, nil
}
