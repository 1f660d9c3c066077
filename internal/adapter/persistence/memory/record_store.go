package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Identifier prefixes per entity kind.
const (
	clientIDPrefix       = "cli"
	userIDPrefix         = "user"
	productIDPrefix      = "prod"
	serviceOrderIDPrefix = "os"
	quoteIDPrefix        = "qt"
	quoteItemIDPrefix    = "item"
)

// RecordStore keeps every collection in process memory.
//
// Collections are ordered newest first: creates prepend. Reads hand out copies so callers
// never alias the store's slices. The credential map holds bcrypt hashes keyed by username
// and is never exposed.
type RecordStore struct {
	mu sync.RWMutex

	clients  []entities.Client
	users    []entities.User
	products []entities.Product
	orders   []entities.ServiceOrder
	quotes   []entities.Quote

	credentials map[string][]byte
	quoteSeq    int

	passwordCost int
	now          func() time.Time
	seed         bool
}

var _ interfaces.IRecordStore = (*RecordStore)(nil)

type Option func(*RecordStore)

// WithPasswordCost sets the bcrypt cost used for the credential map.
func WithPasswordCost(cost int) Option {
	return func(s *RecordStore) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.passwordCost = cost
		}
	}
}

// WithClock overrides time.Now (seed dates are relative to it).
func WithClock(now func() time.Time) Option {
	return func(s *RecordStore) { s.now = now }
}

// WithSeedData loads the demo clients, users, products, orders and quotes.
func WithSeedData() Option {
	return func(s *RecordStore) { s.seed = true }
}

func NewRecordStore(opts ...Option) *RecordStore {
	s := &RecordStore{
		credentials:  map[string][]byte{},
		passwordCost: bcrypt.DefaultCost,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed {
		loadSeed(s)
	}
	return s
}

func (s *RecordStore) ListClients(_ context.Context) ([]entities.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Client, len(s.clients))
	for i, c := range s.clients {
		out[i] = c.Clone()
	}
	return out, nil
}

func (s *RecordStore) ListUsers(_ context.Context) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.User, len(s.users))
	for i, u := range s.users {
		out[i] = u.Clone()
	}
	return out, nil
}

func (s *RecordStore) ListProducts(_ context.Context) ([]entities.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products), nil
}

func (s *RecordStore) ListServiceOrders(_ context.Context) ([]entities.ServiceOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.ServiceOrder, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.Clone()
	}
	return out, nil
}

func (s *RecordStore) ListQuotes(_ context.Context) ([]entities.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Quote, len(s.quotes))
	for i, q := range s.quotes {
		out[i] = q.Clone()
	}
	return out, nil
}

func (s *RecordStore) CreateClient(_ context.Context, c entities.Client) (entities.Client, error) {
	c = c.Clone()
	c.ID = newID(clientIDPrefix)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = slices.Insert(s.clients, 0, c)
	return c.Clone(), nil
}

func (s *RecordStore) CreateServiceOrder(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.findClient(o.ClientID)
	if !ok {
		return entities.ServiceOrder{}, interfaces.ErrReferenceNotFound
	}

	o = o.Clone()
	o.ID = newID(serviceOrderIDPrefix)
	o.ClientName = client.SnapshotName()
	o.Status = entities.ServiceOrderStatusPending
	s.orders = slices.Insert(s.orders, 0, o)
	return o.Clone(), nil
}

func (s *RecordStore) CreateUser(_ context.Context, u entities.User, password string) (entities.User, error) {
	var hash []byte
	if u.Username != "" && password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), s.passwordCost)
		if err != nil {
			return entities.User{}, fmt.Errorf("hash credential: %w", err)
		}
		hash = h
	}

	u = u.Clone()
	u.ID = newID(userIDPrefix)
	u.Status = entities.UserStatusActive

	s.mu.Lock()
	defer s.mu.Unlock()
	if hash != nil {
		s.credentials[u.Username] = hash
	}
	s.users = slices.Insert(s.users, 0, u)
	return u.Clone(), nil
}

func (s *RecordStore) CreateProduct(_ context.Context, p entities.Product) (entities.Product, error) {
	p.ID = newID(productIDPrefix)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = slices.Insert(s.products, 0, p)
	return p, nil
}

func (s *RecordStore) CreateQuote(_ context.Context, q entities.Quote) (entities.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.findClient(q.ClientID)
	if !ok {
		return entities.Quote{}, interfaces.ErrReferenceNotFound
	}

	q = q.Clone()
	for i := range q.Items {
		if q.Items[i].ID == "" {
			q.Items[i].ID = newID(quoteItemIDPrefix)
		}
	}
	q.RecomputeTotals()
	q.ID = newID(quoteIDPrefix)
	s.quoteSeq++
	q.QuoteNumber = entities.FormatQuoteNumber(s.quoteSeq)
	q.ClientName = client.SnapshotName()
	q.Status = entities.QuoteStatusDraft
	s.quotes = slices.Insert(s.quotes, 0, q)
	return q.Clone(), nil
}

func (s *RecordStore) GetClientByID(_ context.Context, id string) (entities.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, _ := s.findClient(id)
	return c.Clone(), nil
}

func (s *RecordStore) GetQuoteByID(_ context.Context, id string) (entities.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.quoteIndex(id); i >= 0 {
		return s.quotes[i].Clone(), nil
	}
	return entities.Quote{}, nil
}

func (s *RecordStore) UpdateQuoteStatus(_ context.Context, id string, next entities.QuoteStatus) (entities.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.quoteIndex(id)
	if i < 0 {
		return entities.Quote{}, nil
	}
	current := s.quotes[i].Status
	if !current.CanTransitionTo(next) {
		return entities.Quote{}, fmt.Errorf("%w: %s -> %s", interfaces.ErrInvalidQuoteTransition, current, next)
	}
	s.quotes[i].Status = next
	return s.quotes[i].Clone(), nil
}

func (s *RecordStore) Authenticate(_ context.Context, username, password string) (entities.User, error) {
	if username == "" || password == "" {
		return entities.User{}, interfaces.ErrMissingCredentials
	}

	s.mu.RLock()
	var (
		user  entities.User
		found bool
	)
	for _, u := range s.users {
		if u.Username == username {
			user, found = u.Clone(), true
			break
		}
	}
	hash, hasCredential := s.credentials[username]
	s.mu.RUnlock()

	if !found || !hasCredential {
		return entities.User{}, interfaces.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return entities.User{}, interfaces.ErrInvalidCredentials
	}
	if !user.Active() {
		return entities.User{}, interfaces.ErrUserInactive
	}
	return user, nil
}

// findClient must be called with s.mu held.
func (s *RecordStore) findClient(id string) (entities.Client, bool) {
	if id == "" {
		return entities.Client{}, false
	}
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return entities.Client{}, false
}

// quoteIndex must be called with s.mu held.
func (s *RecordStore) quoteIndex(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.quotes, func(q entities.Quote) bool { return q.ID == id })
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
