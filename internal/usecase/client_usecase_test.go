package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldservice/internal/domain/entities"
	mock_interfaces "fieldservice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClientUseCase_Create(t *testing.T) {
	t.Run("type and payload mismatch", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		c := entities.Client{Type: entities.PartyTypeOrganization, Individual: &entities.ClientIndividual{FullName: "Ana"}}
		_, err := uc.Create(context.Background(), c)
		if !errors.Is(err, ErrInvalidClient) || !errors.Is(err, entities.ErrPartyShape) {
			t.Fatalf("expected ErrInvalidClient wrapping ErrPartyShape, got %v", err)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		c := entities.NewOrganizationClient("", entities.Address{}, entities.ClientOrganization{LegalName: "   "})
		_, err := uc.Create(context.Background(), c)
		if !errors.Is(err, entities.ErrPartyNameRequired) {
			t.Fatalf("expected ErrPartyNameRequired, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		c := entities.NewIndividualClient("not-an-email", entities.Address{}, entities.ClientIndividual{FullName: "Ana"})
		_, err := uc.Create(context.Background(), c)
		if !errors.Is(err, ErrInvalidClient) {
			t.Fatalf("expected ErrInvalidClient, got %v", err)
		}
	})

	t.Run("normalizes and delegates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewClientUseCase(store)

		store.EXPECT().CreateClient(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID != "" {
					t.Fatalf("caller id must be dropped, got %q", c.ID)
				}
				if c.Individual.FullName != "Ana" || c.Email != "ana@x.com" || c.Address.State != "PE" {
					t.Fatalf("unexpected normalized client: %+v %+v", c, c.Individual)
				}
				c.ID = "cli-1"
				return c, nil
			},
		)

		c := entities.NewIndividualClient(" ana@x.com ", entities.Address{State: " pe "}, entities.ClientIndividual{FullName: " Ana "})
		c.ID = "forged"
		res, err := uc.Create(context.Background(), c)
		if err != nil || res.ID != "cli-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestClientUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIRecordStore(ctrl)
	uc := NewClientUseCase(store)

	store.EXPECT().ListClients(gomock.Any()).Return(nil, errors.New("db"))
	if _, err := uc.List(context.Background()); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}
