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

var (
	ErrInvalidServiceOrder      = errors.New("invalid service order")
	ErrEmptyServiceDescription  = errors.New("service description is required")
	ErrServiceParserUnavailable = errors.New("service request parser is not configured")
)

// IServiceOrderUseCase schedules field work and optionally turns free text into a
// structured request.
type IServiceOrderUseCase interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	ParseRequest(ctx context.Context, description string) (entities.ParsedServiceRequest, error)
}

type ServiceOrderUseCase struct {
	store  interfaces.IRecordStore
	parser interfaces.IServiceRequestParser
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

// NewServiceOrderUseCase accepts a nil parser; ParseRequest then reports
// ErrServiceParserUnavailable.
func NewServiceOrderUseCase(store interfaces.IRecordStore, parser interfaces.IServiceRequestParser) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{store: store, parser: parser}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	o = o.Clone()
	o.ClientID = strings.TrimSpace(o.ClientID)
	o.ServiceType = strings.TrimSpace(o.ServiceType)
	o.Location = strings.TrimSpace(o.Location)
	o.Technician = strings.TrimSpace(o.Technician)

	if err := o.Validate(); err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %w", ErrInvalidServiceOrder, err)
	}

	if o.Location == "" && o.ClientID != "" {
		client, err := u.store.GetClientByID(ctx, o.ClientID)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		o.Location = client.Address.Line()
	}

	o.ID = ""
	o.ClientName = ""
	o.Status = ""
	created, err := u.store.CreateServiceOrder(ctx, o)
	if err != nil {
		log.Printf("[service-order][usecase] create failed client_id=%s err=%v", o.ClientID, err)
		return entities.ServiceOrder{}, err
	}
	log.Printf("[service-order][usecase] created id=%s client_id=%s scheduled=%s", created.ID, created.ClientID, created.ScheduledDate.Format("2006-01-02T15:04"))
	return created, nil
}

func (u *ServiceOrderUseCase) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.store.ListServiceOrders(ctx)
}

func (u *ServiceOrderUseCase) ParseRequest(ctx context.Context, description string) (entities.ParsedServiceRequest, error) {
	if u.parser == nil {
		return entities.ParsedServiceRequest{}, ErrServiceParserUnavailable
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return entities.ParsedServiceRequest{}, ErrEmptyServiceDescription
	}

	parsed, err := u.parser.Parse(ctx, description)
	if err != nil {
		log.Printf("[service-order][usecase] parse failed description_len=%d err=%v", len(description), err)
		return entities.ParsedServiceRequest{}, err
	}
	return parsed, nil
}
