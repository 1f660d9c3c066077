package interfaces

import "context"

// ILoginFlagStore persists the single "logged in" boolean across process restarts.
// Credentials are never stored.
type ILoginFlagStore interface {
	IsLoggedIn(ctx context.Context) (bool, error)
	SetLoggedIn(ctx context.Context) error
	Clear(ctx context.Context) error
}
