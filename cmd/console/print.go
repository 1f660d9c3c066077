package main

import (
	"fmt"
	"strconv"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/session"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const dateLayout = "02/01/2006"

var orderStatuses = []entities.ServiceOrderStatus{
	entities.ServiceOrderStatusPending,
	entities.ServiceOrderStatusInProgress,
	entities.ServiceOrderStatusCompleted,
	entities.ServiceOrderStatusCanceled,
}

func printDashboard(d session.Dashboard) {
	fmt.Println(renderDashboard(d))
}

func renderDashboard(d session.Dashboard) string {
	rows := [][]string{{"Service orders", strconv.Itoa(d.TotalOrders)}}
	for _, st := range orderStatuses {
		rows = append(rows, []string{"  " + string(st), strconv.Itoa(d.ByStatus[st])})
	}
	rows = append(rows,
		[]string{"Clients", strconv.Itoa(d.Clients)},
		[]string{"Quotes", strconv.Itoa(d.Quotes)},
		[]string{"Products", strconv.Itoa(d.Products)},
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Dashboard"),
		newTable(nil, rows),
		"",
		titleStyle.Render("Recent service orders"),
		renderOrders(d.RecentOrders),
	)
}

func printClients(clients []entities.Client) { fmt.Println(renderClients(clients)) }

func renderClients(clients []entities.Client) string {
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{c.ID, c.DisplayName(), string(c.Type), c.Email, c.Address.City})
	}
	return newTable([]string{"ID", "NAME", "TYPE", "EMAIL", "CITY"}, rows)
}

func printUsers(users []entities.User) { fmt.Println(renderUsers(users)) }

func renderUsers(users []entities.User) string {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.ID, u.DisplayName(), u.Username, string(u.Role), string(u.Status)})
	}
	return newTable([]string{"ID", "NAME", "USERNAME", "ROLE", "STATUS"}, rows)
}

func printProducts(products []entities.Product) { fmt.Println(renderProducts(products)) }

func renderProducts(products []entities.Product) string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		stock := fmt.Sprintf("%d %s", p.QuantityInStock, p.UnitOfMeasure)
		rows = append(rows, []string{p.SKU, p.Name, string(p.Category), stock, p.SellingPrice.StringFixed(2)})
	}
	return newTable([]string{"SKU", "NAME", "CATEGORY", "STOCK", "PRICE"}, rows)
}

func printOrders(orders []entities.ServiceOrder) { fmt.Println(renderOrders(orders)) }

func renderOrders(orders []entities.ServiceOrder) string {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{o.ID, o.ClientName, o.ServiceType, o.ScheduledDate.Format(dateLayout), string(o.Status)})
	}
	return newTable([]string{"ID", "CLIENT", "SERVICE", "SCHEDULED", "STATUS"}, rows)
}

func printQuotes(quotes []entities.Quote) { fmt.Println(renderQuotes(quotes)) }

func renderQuotes(quotes []entities.Quote) string {
	rows := make([][]string, 0, len(quotes))
	for _, q := range quotes {
		rows = append(rows, []string{q.QuoteNumber, q.ClientName, q.ValidUntil.Format(dateLayout), q.Total.StringFixed(2), string(q.Status)})
	}
	return newTable([]string{"NUMBER", "CLIENT", "VALID UNTIL", "TOTAL", "STATUS"}, rows)
}

// newTable renders rows under headers; an empty listing renders as "(none)".
func newTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return mutedStyle.Render("(none)")
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Rows(rows...)
	if len(headers) > 0 {
		t = t.Headers(headers...)
	}
	return t.Render()
}
