package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
	mock_interfaces "fieldservice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNormalizeZipCode(t *testing.T) {
	cases := map[string]string{
		"01001-000":   "01001000",
		" 01.001-000": "01001000",
		"01001000":    "01001000",
		"0100A000":    "",
		"":            "",
	}
	for in, want := range cases {
		if got := NormalizeZipCode(in); got != want {
			t.Fatalf("NormalizeZipCode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPostalCodeUseCase_Lookup(t *testing.T) {
	t.Run("invalid zip", func(t *testing.T) {
		uc := NewPostalCodeUseCase(nil)
		if _, err := uc.Lookup(context.Background(), "123"); !errors.Is(err, ErrInvalidZipCode) {
			t.Fatalf("expected ErrInvalidZipCode, got %v", err)
		}
	})

	t.Run("lookup unavailable", func(t *testing.T) {
		uc := NewPostalCodeUseCase(nil)
		if _, err := uc.Lookup(context.Background(), "01001-000"); !errors.Is(err, ErrPostalLookupUnavailable) {
			t.Fatalf("expected ErrPostalLookupUnavailable, got %v", err)
		}
	})

	t.Run("not found passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lookup := mock_interfaces.NewMockIPostalCodeLookup(ctrl)
		uc := NewPostalCodeUseCase(lookup)

		lookup.EXPECT().Lookup(gomock.Any(), "99999999").Return(entities.PostalAddress{}, interfaces.ErrPostalCodeNotFound)
		if _, err := uc.Lookup(context.Background(), "99999-999"); !errors.Is(err, interfaces.ErrPostalCodeNotFound) {
			t.Fatalf("expected ErrPostalCodeNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lookup := mock_interfaces.NewMockIPostalCodeLookup(ctrl)
		uc := NewPostalCodeUseCase(lookup)

		lookup.EXPECT().Lookup(gomock.Any(), "01001000").Return(entities.PostalAddress{City: "São Paulo", State: "SP"}, nil)
		addr, err := uc.Lookup(context.Background(), "01001-000")
		if err != nil || addr.City != "São Paulo" {
			t.Fatalf("unexpected result err=%v addr=%+v", err, addr)
		}
	})
}
