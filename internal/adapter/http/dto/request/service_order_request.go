package request

import (
	"fieldservice/internal/domain/entities"
)

type ServiceOrderRequest struct {
	ClientID      string `json:"clientId" binding:"required"`
	ServiceType   string `json:"serviceType" binding:"required"`
	Location      string `json:"location"`
	ScheduledDate string `json:"scheduledDate" binding:"required"`
	Notes         string `json:"notes"`
	Technician    string `json:"technician"`
}

func (r ServiceOrderRequest) ToEntity() (entities.ServiceOrder, error) {
	scheduled, err := ParseDate(r.ScheduledDate)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return entities.ServiceOrder{
		ClientID:      r.ClientID,
		ServiceType:   r.ServiceType,
		Location:      r.Location,
		ScheduledDate: scheduled,
		Notes:         r.Notes,
		Technician:    r.Technician,
	}, nil
}

// ParseServiceRequest carries the free-text description typed by the operator.
type ParseServiceRequest struct {
	Description string `json:"description" binding:"required"`
}
