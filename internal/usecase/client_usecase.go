package usecase

import (
	"context"
	"errors"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
	"fmt"
	"strings"
)

var ErrInvalidClient = errors.New("invalid client")

type IClientUseCase interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}

type ClientUseCase struct {
	store interfaces.IRecordStore
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(store interfaces.IRecordStore) *ClientUseCase {
	return &ClientUseCase{store: store}
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c = normalizeClient(c)
	if err := c.Validate(); err != nil {
		return entities.Client{}, fmt.Errorf("%w: %w", ErrInvalidClient, err)
	}
	c.ID = ""
	return u.store.CreateClient(ctx, c)
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.store.ListClients(ctx)
}

func normalizeClient(c entities.Client) entities.Client {
	c = c.Clone()
	c.Email = strings.TrimSpace(c.Email)
	c.Address = normalizeAddress(c.Address)
	if c.Organization != nil {
		c.Organization.LegalName = strings.TrimSpace(c.Organization.LegalName)
		c.Organization.TradeName = strings.TrimSpace(c.Organization.TradeName)
	}
	if c.Individual != nil {
		c.Individual.FullName = strings.TrimSpace(c.Individual.FullName)
	}
	return c
}

func normalizeAddress(a entities.Address) entities.Address {
	a.Street = strings.TrimSpace(a.Street)
	a.Number = strings.TrimSpace(a.Number)
	a.Complement = strings.TrimSpace(a.Complement)
	a.Neighborhood = strings.TrimSpace(a.Neighborhood)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.ToUpper(strings.TrimSpace(a.State))
	a.ZipCode = strings.TrimSpace(a.ZipCode)
	return a
}
