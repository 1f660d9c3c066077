package usecase

import (
	"context"
	"errors"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
	"fmt"
	"strings"
)

var ErrInvalidProduct = errors.New("invalid product")

type IProductUseCase interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
}

type ProductUseCase struct {
	store interfaces.IRecordStore
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(store interfaces.IRecordStore) *ProductUseCase {
	return &ProductUseCase{store: store}
}

func (u *ProductUseCase) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.SKU = strings.ToUpper(strings.TrimSpace(p.SKU))
	p.Name = strings.TrimSpace(p.Name)
	p.Supplier = strings.TrimSpace(p.Supplier)
	if err := p.Validate(); err != nil {
		return entities.Product{}, fmt.Errorf("%w: %w", ErrInvalidProduct, err)
	}
	p.ID = ""
	return u.store.CreateProduct(ctx, p)
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.store.ListProducts(ctx)
}
