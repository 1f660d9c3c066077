package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldservice/internal/domain/entities"
	mock_interfaces "fieldservice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProductUseCase_Create(t *testing.T) {
	valid := entities.Product{
		SKU:           " tel-009 ",
		Name:          "Headset",
		Category:      entities.ProductCategoryTelephony,
		UnitOfMeasure: entities.UnitOfMeasureUnit,
		SellingPrice:  dec("99.9"),
	}

	t.Run("negative stock", func(t *testing.T) {
		uc := NewProductUseCase(nil)
		p := valid
		p.QuantityInStock = -1
		_, err := uc.Create(context.Background(), p)
		if !errors.Is(err, ErrInvalidProduct) {
			t.Fatalf("expected ErrInvalidProduct, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		uc := NewProductUseCase(nil)
		p := valid
		p.Category = "Móveis"
		_, err := uc.Create(context.Background(), p)
		if !errors.Is(err, ErrInvalidProduct) {
			t.Fatalf("expected ErrInvalidProduct, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewProductUseCase(store)

		store.EXPECT().CreateProduct(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.SKU != "TEL-009" {
					t.Fatalf("expected normalized sku, got %q", p.SKU)
				}
				p.ID = "prod-9"
				return p, nil
			},
		)
		res, err := uc.Create(context.Background(), valid)
		if err != nil || res.ID != "prod-9" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}
