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

func TestUserUseCase_Create(t *testing.T) {
	t.Run("invalid role", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		u := entities.User{Type: entities.PartyTypeIndividual, Role: "Gerente", Individual: &entities.UserIndividual{FullName: "X"}}
		_, err := uc.Create(context.Background(), u, "pw")
		if !errors.Is(err, ErrInvalidUser) {
			t.Fatalf("expected ErrInvalidUser, got %v", err)
		}
	})

	t.Run("passes password to store only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewUserUseCase(store)

		store.EXPECT().CreateUser(gomock.Any(), gomock.AssignableToTypeOf(entities.User{}), "s3cret").DoAndReturn(
			func(_ context.Context, u entities.User, _ string) (entities.User, error) {
				if u.Username != "tecnico" {
					t.Fatalf("expected trimmed username, got %q", u.Username)
				}
				u.ID = "user-9"
				u.Status = entities.UserStatusActive
				return u, nil
			},
		)

		u := entities.User{
			Type:       entities.PartyTypeIndividual,
			Username:   " tecnico ",
			Role:       entities.UserRoleTechnician,
			Individual: &entities.UserIndividual{FullName: "Técnico"},
		}
		res, err := uc.Create(context.Background(), u, "s3cret")
		if err != nil || res.ID != "user-9" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestUserUseCase_Authenticate(t *testing.T) {
	t.Run("passes store errors through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewUserUseCase(store)

		store.EXPECT().Authenticate(gomock.Any(), "mariana", "123").Return(entities.User{}, interfaces.ErrUserInactive)
		_, err := uc.Authenticate(context.Background(), "mariana", "123")
		if !errors.Is(err, interfaces.ErrUserInactive) {
			t.Fatalf("expected ErrUserInactive, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewUserUseCase(store)

		store.EXPECT().Authenticate(gomock.Any(), "carlos", "123").Return(entities.User{ID: "user-1"}, nil)
		u, err := uc.Authenticate(context.Background(), "carlos", "123")
		if err != nil || u.ID != "user-1" {
			t.Fatalf("unexpected result err=%v user=%+v", err, u)
		}
	})
}
