package entities

import (
	"errors"
	"slices"
	"time"
)

var ErrScheduledDateRequired = errors.New("scheduled date is required")

// ServiceOrderStatus is the lifecycle state of a service order (OS).
//
// Orders are always created Pendente. No operation moves them to the other states yet;
// the values exist so seeded and imported orders can carry them.
type ServiceOrderStatus string

const (
	ServiceOrderStatusPending    ServiceOrderStatus = "Pendente"
	ServiceOrderStatusInProgress ServiceOrderStatus = "Em Andamento"
	ServiceOrderStatusCompleted  ServiceOrderStatus = "Finalizada"
	ServiceOrderStatusCanceled   ServiceOrderStatus = "Cancelada"
)

// ServiceOrder is a scheduled field-work task for a client.
//
// ClientName is a snapshot taken at creation and is not kept in sync with the client.
type ServiceOrder struct {
	ID              string             `json:"id"`
	ClientID        string             `json:"clientId"`
	ClientName      string             `json:"clientName"`
	ServiceType     string             `json:"serviceType" validate:"required"`
	Location        string             `json:"location"`
	ScheduledDate   time.Time          `json:"scheduledDate"`
	Notes           string             `json:"notes"`
	Status          ServiceOrderStatus `json:"status"`
	Technician      string             `json:"technician,omitempty"`
	Photos          []string           `json:"photos,omitempty"`
	CompletedTasks  []string           `json:"completedTasks,omitempty"`
	ClientSignature string             `json:"clientSignature,omitempty"`
	CompletedAt     *time.Time         `json:"completedAt,omitempty"`
}

func (o ServiceOrder) Validate() error {
	if o.ScheduledDate.IsZero() {
		return ErrScheduledDateRequired
	}
	return validate.Struct(o)
}

func (o ServiceOrder) Clone() ServiceOrder {
	out := o
	out.Photos = slices.Clone(o.Photos)
	out.CompletedTasks = slices.Clone(o.CompletedTasks)
	if o.CompletedAt != nil {
		at := *o.CompletedAt
		out.CompletedAt = &at
	}
	return out
}
