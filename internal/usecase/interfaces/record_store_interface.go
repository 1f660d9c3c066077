package interfaces

import (
	"context"
	"errors"

	"fieldservice/internal/domain/entities"
)

// Errors every IRecordStore implementation reports. Messages are shown to end users as-is.
var (
	ErrReferenceNotFound      = errors.New("referenced client not found")
	ErrMissingCredentials     = errors.New("username and password are required")
	ErrInvalidCredentials     = errors.New("invalid username or password")
	ErrUserInactive           = errors.New("user is inactive and cannot access the system")
	ErrInvalidQuoteTransition = errors.New("invalid quote status transition")
)

// IRecordStore is the authoritative storage for the five entity kinds.
//
// Contract:
//   - List* return every record of the kind, newest first, and never fail for the
//     in-memory implementation.
//   - Create* assign the identifier; CreateServiceOrder/CreateQuote also resolve the
//     client (ErrReferenceNotFound), snapshot its name and set the initial status.
//   - Get* return the zero value (ID == "") when the record does not exist.
type IRecordStore interface {
	ListClients(ctx context.Context) ([]entities.Client, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)
	ListServiceOrders(ctx context.Context) ([]entities.ServiceOrder, error)
	ListQuotes(ctx context.Context) ([]entities.Quote, error)

	CreateClient(ctx context.Context, c entities.Client) (entities.Client, error)
	CreateServiceOrder(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	CreateUser(ctx context.Context, u entities.User, password string) (entities.User, error)
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	CreateQuote(ctx context.Context, q entities.Quote) (entities.Quote, error)

	GetClientByID(ctx context.Context, id string) (entities.Client, error)
	GetQuoteByID(ctx context.Context, id string) (entities.Quote, error)
	UpdateQuoteStatus(ctx context.Context, id string, next entities.QuoteStatus) (entities.Quote, error)

	Authenticate(ctx context.Context, username, password string) (entities.User, error)
}
