package entities

import "github.com/shopspring/decimal"

type ProductCategory string

const (
	ProductCategoryTelephony   ProductCategory = "Telefonia"
	ProductCategoryNetworks    ProductCategory = "Redes"
	ProductCategorySecurity    ProductCategory = "Segurança"
	ProductCategoryMaintenance ProductCategory = "Manutenção"
	ProductCategoryOther       ProductCategory = "Outros"
)

type UnitOfMeasure string

const (
	UnitOfMeasureUnit  UnitOfMeasure = "unidade"
	UnitOfMeasureBox   UnitOfMeasure = "caixa"
	UnitOfMeasurePiece UnitOfMeasure = "peça"
	UnitOfMeasureMeter UnitOfMeasure = "metro"
	UnitOfMeasureOther UnitOfMeasure = "outro"
)

// Product is an inventory item. SKU uniqueness is not enforced.
type Product struct {
	ID              string          `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name" validate:"required"`
	Description     string          `json:"description,omitempty"`
	Category        ProductCategory `json:"category" validate:"oneof=Telefonia Redes Segurança Manutenção Outros"`
	UnitOfMeasure   UnitOfMeasure   `json:"unitOfMeasure" validate:"oneof=unidade caixa peça metro outro"`
	QuantityInStock int             `json:"quantityInStock" validate:"gte=0"`
	CostPrice       decimal.Decimal `json:"costPrice" validate:"gte=0"`
	SellingPrice    decimal.Decimal `json:"sellingPrice" validate:"gte=0"`
	Supplier        string          `json:"supplier,omitempty"`
}

func (p Product) Validate() error {
	return validate.Struct(p)
}
