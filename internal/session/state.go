package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

// ErrInitialLoad is the single global error reported when the bulk fetch fails.
var ErrInitialLoad = errors.New("failed to load initial application data")

// ErrStaleLoad is returned by a load whose session ended or was replaced before it finished.
var ErrStaleLoad = errors.New("session changed while loading")

// Backend is what the state needs from the access facade.
type Backend interface {
	Authenticate(ctx context.Context, username, password string) (entities.User, error)

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
}

// State is the single source of truth for the logged-in user and the five collections
// shown by the console.
type State struct {
	api  Backend
	flag interfaces.ILoginFlagStore

	mu       sync.RWMutex
	gen      uint64 // bumped on login and logout
	loggedIn bool
	user     *entities.User
	loading  bool
	err      error

	clients  []entities.Client
	users    []entities.User
	products []entities.Product
	orders   []entities.ServiceOrder
	quotes   []entities.Quote
}

func NewState(api Backend, flag interfaces.ILoginFlagStore) *State {
	return &State{api: api, flag: flag}
}

// Restore re-enters the logged-in state when the durable flag is set and loads the
// collections. The user record is not persisted, so User reports false afterwards.
func (s *State) Restore(ctx context.Context) error {
	ok, err := s.flag.IsLoggedIn(ctx)
	if err != nil {
		return fmt.Errorf("read login flag: %w", err)
	}
	if !ok {
		return nil
	}
	s.mu.Lock()
	s.loggedIn = true
	s.gen++
	s.mu.Unlock()
	return s.Load(ctx)
}

// Login authenticates, marks the session logged in, persists the flag and loads every
// collection. A failed authentication leaves the state untouched. A failed load keeps
// the session logged in and is reported both here and through Err.
func (s *State) Login(ctx context.Context, username, password string) (entities.User, error) {
	user, err := s.api.Authenticate(ctx, username, password)
	if err != nil {
		return entities.User{}, err
	}

	s.mu.Lock()
	s.user = &user
	s.loggedIn = true
	s.gen++
	s.mu.Unlock()

	if err := s.flag.SetLoggedIn(ctx); err != nil {
		log.Printf("[session][state] failed persisting login flag user_id=%s err=%v", user.ID, err)
	}
	if err := s.Load(ctx); err != nil {
		return user, err
	}
	return user, nil
}

// Load fetches the five collections in parallel. All of them are replaced, or none is.
// A load overtaken by a logout or a newer login commits nothing.
func (s *State) Load(ctx context.Context) error {
	s.mu.Lock()
	gen := s.gen
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	var (
		clients  []entities.Client
		users    []entities.User
		products []entities.Product
		orders   []entities.ServiceOrder
		quotes   []entities.Quote
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { clients, err = s.api.ListClients(gctx); return })
	g.Go(func() (err error) { orders, err = s.api.ListServiceOrders(gctx); return })
	g.Go(func() (err error) { users, err = s.api.ListUsers(gctx); return })
	g.Go(func() (err error) { products, err = s.api.ListProducts(gctx); return })
	g.Go(func() (err error) { quotes, err = s.api.ListQuotes(gctx); return })
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || !s.loggedIn {
		log.Printf("[session][state] discarding stale load")
		if gen == s.gen {
			s.loading = false
		}
		return ErrStaleLoad
	}
	s.loading = false
	if err != nil {
		log.Printf("[session][state] initial load failed err=%v", err)
		s.err = fmt.Errorf("%w: %w", ErrInitialLoad, err)
		return s.err
	}
	s.clients, s.users, s.products, s.orders, s.quotes = clients, users, products, orders, quotes
	return nil
}

// Logout clears the user, both copies of the flag and every collection immediately.
func (s *State) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.loggedIn = false
	s.gen++
	s.loading = false
	s.err = nil
	s.clients, s.users, s.products, s.orders, s.quotes = nil, nil, nil, nil, nil
	s.mu.Unlock()

	if err := s.flag.Clear(ctx); err != nil {
		return fmt.Errorf("clear login flag: %w", err)
	}
	return nil
}

func (s *State) AddClient(ctx context.Context, c entities.Client) (entities.Client, error) {
	created, err := s.api.CreateClient(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	return created, refresh(ctx, s, s.api.ListClients, func(v []entities.Client) { s.clients = v })
}

func (s *State) AddServiceOrder(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	created, err := s.api.CreateServiceOrder(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return created, refresh(ctx, s, s.api.ListServiceOrders, func(v []entities.ServiceOrder) { s.orders = v })
}

func (s *State) AddUser(ctx context.Context, u entities.User, password string) (entities.User, error) {
	created, err := s.api.CreateUser(ctx, u, password)
	if err != nil {
		return entities.User{}, err
	}
	return created, refresh(ctx, s, s.api.ListUsers, func(v []entities.User) { s.users = v })
}

func (s *State) AddProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	created, err := s.api.CreateProduct(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	return created, refresh(ctx, s, s.api.ListProducts, func(v []entities.Product) { s.products = v })
}

func (s *State) AddQuote(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	created, err := s.api.CreateQuote(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	return created, refresh(ctx, s, s.api.ListQuotes, func(v []entities.Quote) { s.quotes = v })
}

// refresh re-reads one collection from the backend after a create. The result is
// dropped when the session changed meanwhile.
func refresh[T any](ctx context.Context, s *State, list func(context.Context) ([]T, error), set func([]T)) error {
	s.mu.RLock()
	gen := s.gen
	s.mu.RUnlock()

	items, err := list(ctx)
	if err != nil {
		return fmt.Errorf("refresh after create: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || !s.loggedIn {
		return nil
	}
	set(items)
	return nil
}

func (s *State) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

// User returns the authenticated user, if known.
func (s *State) User() (entities.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return entities.User{}, false
	}
	return s.user.Clone(), true
}

func (s *State) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err is the global load error, nil after a successful load or a logout.
func (s *State) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *State) Clients() []entities.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.clients)
}

func (s *State) Users() []entities.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users)
}

func (s *State) Products() []entities.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products)
}

func (s *State) ServiceOrders() []entities.ServiceOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.orders)
}

func (s *State) Quotes() []entities.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.quotes)
}
