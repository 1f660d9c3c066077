package facade

import (
	"context"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultLatency is the simulated round trip applied to every call.
const DefaultLatency = 200 * time.Millisecond

const tracerName = "fieldservice/facade"

// UseCases groups the domain operations the facade exposes.
type UseCases struct {
	Clients       usecase.IClientUseCase
	Users         usecase.IUserUseCase
	Products      usecase.IProductUseCase
	ServiceOrders usecase.IServiceOrderUseCase
	Quotes        usecase.IQuoteUseCase
}

// API is the request/response boundary between the application state and the domain.
//
// Every call runs the operation to completion, then waits the configured latency, then
// returns the result or the error unchanged. There are no retries and no caching.
type API struct {
	uc      UseCases
	latency time.Duration
	tracer  trace.Tracer
	sleep   func(time.Duration)
}

type Option func(*API)

// WithLatency sets the simulated delay; zero disables it.
func WithLatency(d time.Duration) Option {
	return func(a *API) {
		if d >= 0 {
			a.latency = d
		}
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(a *API) { a.tracer = t }
}

func New(uc UseCases, opts ...Option) *API {
	a := &API{
		uc:      uc,
		latency: DefaultLatency,
		tracer:  otel.Tracer(tracerName),
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *API) Latency() time.Duration { return a.latency }

func (a *API) Authenticate(ctx context.Context, username, password string) (entities.User, error) {
	return call(ctx, a, "Authenticate", func(ctx context.Context) (entities.User, error) {
		return a.uc.Users.Authenticate(ctx, username, password)
	}, attribute.String("username", username))
}

func (a *API) ListClients(ctx context.Context) ([]entities.Client, error) {
	return call(ctx, a, "ListClients", a.uc.Clients.List)
}

func (a *API) ListUsers(ctx context.Context) ([]entities.User, error) {
	return call(ctx, a, "ListUsers", a.uc.Users.List)
}

func (a *API) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return call(ctx, a, "ListProducts", a.uc.Products.List)
}

func (a *API) ListServiceOrders(ctx context.Context) ([]entities.ServiceOrder, error) {
	return call(ctx, a, "ListServiceOrders", a.uc.ServiceOrders.List)
}

func (a *API) ListQuotes(ctx context.Context) ([]entities.Quote, error) {
	return call(ctx, a, "ListQuotes", a.uc.Quotes.List)
}

func (a *API) CreateClient(ctx context.Context, c entities.Client) (entities.Client, error) {
	return call(ctx, a, "CreateClient", func(ctx context.Context) (entities.Client, error) {
		return a.uc.Clients.Create(ctx, c)
	})
}

func (a *API) CreateServiceOrder(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	return call(ctx, a, "CreateServiceOrder", func(ctx context.Context) (entities.ServiceOrder, error) {
		return a.uc.ServiceOrders.Create(ctx, o)
	}, attribute.String("client_id", o.ClientID))
}

func (a *API) CreateUser(ctx context.Context, u entities.User, password string) (entities.User, error) {
	return call(ctx, a, "CreateUser", func(ctx context.Context) (entities.User, error) {
		return a.uc.Users.Create(ctx, u, password)
	})
}

func (a *API) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	return call(ctx, a, "CreateProduct", func(ctx context.Context) (entities.Product, error) {
		return a.uc.Products.Create(ctx, p)
	})
}

func (a *API) CreateQuote(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	return call(ctx, a, "CreateQuote", func(ctx context.Context) (entities.Quote, error) {
		return a.uc.Quotes.Create(ctx, q)
	}, attribute.String("client_id", q.ClientID))
}

func (a *API) SendQuote(ctx context.Context, id string) (entities.Quote, error) {
	return call(ctx, a, "SendQuote", func(ctx context.Context) (entities.Quote, error) {
		return a.uc.Quotes.Send(ctx, id)
	}, attribute.String("quote_id", id))
}

func (a *API) AcceptQuote(ctx context.Context, id string) (entities.Quote, error) {
	return call(ctx, a, "AcceptQuote", func(ctx context.Context) (entities.Quote, error) {
		return a.uc.Quotes.Accept(ctx, id)
	}, attribute.String("quote_id", id))
}

func (a *API) RejectQuote(ctx context.Context, id string) (entities.Quote, error) {
	return call(ctx, a, "RejectQuote", func(ctx context.Context) (entities.Quote, error) {
		return a.uc.Quotes.Reject(ctx, id)
	}, attribute.String("quote_id", id))
}

func call[T any](ctx context.Context, a *API, op string, fn func(context.Context) (T, error), attrs ...attribute.KeyValue) (T, error) {
	ctx, span := a.tracer.Start(ctx, "facade."+op, trace.WithAttributes(attrs...))
	defer span.End()

	res, err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	// The work is already done; the delay only shapes when the caller sees it.
	if a.latency > 0 {
		a.sleep(a.latency)
	}
	return res, err
}
