package request

import (
	"fieldservice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	SKU             string          `json:"sku"`
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	Category        string          `json:"category" binding:"required"`
	UnitOfMeasure   string          `json:"unitOfMeasure" binding:"required"`
	QuantityInStock int             `json:"quantityInStock"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	Supplier        string          `json:"supplier"`
}

func (r ProductRequest) ToEntity() entities.Product {
	return entities.Product{
		SKU:             r.SKU,
		Name:            r.Name,
		Description:     r.Description,
		Category:        entities.ProductCategory(r.Category),
		UnitOfMeasure:   entities.UnitOfMeasure(r.UnitOfMeasure),
		QuantityInStock: r.QuantityInStock,
		CostPrice:       r.CostPrice,
		SellingPrice:    r.SellingPrice,
		Supplier:        r.Supplier,
	}
}
