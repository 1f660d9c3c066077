package usecase

import (
	"context"
	"errors"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
	"fmt"
	"log"
	"strings"
)

var ErrInvalidUser = errors.New("invalid user")

// IUserUseCase manages console operators and their login.
type IUserUseCase interface {
	Create(ctx context.Context, u entities.User, password string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	Authenticate(ctx context.Context, username, password string) (entities.User, error)
}

type UserUseCase struct {
	store interfaces.IRecordStore
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(store interfaces.IRecordStore) *UserUseCase {
	return &UserUseCase{store: store}
}

func (uc *UserUseCase) Create(ctx context.Context, u entities.User, password string) (entities.User, error) {
	u = u.Clone()
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)
	if u.Organization != nil {
		u.Organization.LegalName = strings.TrimSpace(u.Organization.LegalName)
	}
	if u.Individual != nil {
		u.Individual.FullName = strings.TrimSpace(u.Individual.FullName)
	}
	if err := u.Validate(); err != nil {
		return entities.User{}, fmt.Errorf("%w: %w", ErrInvalidUser, err)
	}
	u.ID = ""
	return uc.store.CreateUser(ctx, u, password)
}

func (uc *UserUseCase) List(ctx context.Context) ([]entities.User, error) {
	return uc.store.ListUsers(ctx)
}

// Authenticate hands the credentials to the store untouched; the store decides
// between missing, invalid and inactive.
func (uc *UserUseCase) Authenticate(ctx context.Context, username, password string) (entities.User, error) {
	user, err := uc.store.Authenticate(ctx, username, password)
	if err != nil {
		log.Printf("[auth][usecase] login rejected username=%q err=%v", username, err)
		return entities.User{}, err
	}
	log.Printf("[auth][usecase] login success user_id=%s role=%s", user.ID, user.Role)
	return user, nil
}
