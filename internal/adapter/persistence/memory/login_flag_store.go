package memory

import (
	"context"
	"sync/atomic"

	"fieldservice/internal/usecase/interfaces"
)

// LoginFlagStore keeps the logged-in flag for the lifetime of the process only.
type LoginFlagStore struct {
	loggedIn atomic.Bool
}

var _ interfaces.ILoginFlagStore = (*LoginFlagStore)(nil)

func NewLoginFlagStore() *LoginFlagStore {
	return &LoginFlagStore{}
}

func (s *LoginFlagStore) IsLoggedIn(_ context.Context) (bool, error) {
	return s.loggedIn.Load(), nil
}

func (s *LoginFlagStore) SetLoggedIn(_ context.Context) error {
	s.loggedIn.Store(true)
	return nil
}

func (s *LoginFlagStore) Clear(_ context.Context) error {
	s.loggedIn.Store(false)
	return nil
}
