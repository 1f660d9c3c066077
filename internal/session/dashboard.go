package session

import (
	"slices"

	"fieldservice/internal/domain/entities"
)

// RecentOrdersLimit is how many orders the dashboard lists.
const RecentOrdersLimit = 5

// Dashboard summarizes the loaded service orders.
type Dashboard struct {
	TotalOrders  int
	ByStatus     map[entities.ServiceOrderStatus]int
	RecentOrders []entities.ServiceOrder
	Clients      int
	Quotes       int
	Products     int
}

// Dashboard counts orders per status and picks the ones with the latest scheduled date.
func (s *State) Dashboard() Dashboard {
	s.mu.RLock()
	orders := slices.Clone(s.orders)
	d := Dashboard{
		TotalOrders: len(s.orders),
		ByStatus:    map[entities.ServiceOrderStatus]int{},
		Clients:     len(s.clients),
		Quotes:      len(s.quotes),
		Products:    len(s.products),
	}
	s.mu.RUnlock()

	for _, o := range orders {
		d.ByStatus[o.Status]++
	}
	slices.SortStableFunc(orders, func(a, b entities.ServiceOrder) int {
		return b.ScheduledDate.Compare(a.ScheduledDate)
	})
	d.RecentOrders = orders[:min(len(orders), RecentOrdersLimit)]
	return d
}
