package response

import (
	"fieldservice/internal/domain/entities"
	"time"
)

// Products, service orders and quotes serialize with the entity json tags.

func FromProducts(ps []entities.Product) []entities.Product {
	if ps == nil {
		return []entities.Product{}
	}
	return ps
}

func FromServiceOrders(orders []entities.ServiceOrder) []entities.ServiceOrder {
	if orders == nil {
		return []entities.ServiceOrder{}
	}
	return orders
}

func FromQuotes(qs []entities.Quote) []entities.Quote {
	if qs == nil {
		return []entities.Quote{}
	}
	return qs
}

type LoginResponse struct {
	User       UserResponse `json:"user"`
	IsLoggedIn bool         `json:"isLoggedIn"`
}

type PingResponse struct {
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}
