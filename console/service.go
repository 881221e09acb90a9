// Package console implements the admin console's session-gated CRUD access
// pattern: the session guard that protects every admin screen and the
// list/form controller each entity screen runs on. It talks to the admin API
// through the narrow service contract below, so screens and tests never
// depend on the transport.
package console

import (
	"context"
)

// Session is the credential pair the service hands out on sign-in. The
// client library owns its lifecycle: sign-in to sign-out or expiry.
type Session struct {
	UserID       string
	AccessToken  string
	RefreshToken string
}

// AuthService is the authentication surface of the remote data service.
// GetSession returns (nil, nil) when no session is active.
type AuthService interface {
	GetSession(ctx context.Context) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password string) (string, error)
	SignOut(ctx context.Context) error
	Role(ctx context.Context, userID string) (string, error)
}

// Collection is one entity table as the console sees it: fetch everything,
// insert, update by id, delete by id. The server owns ordering.
type Collection[T any] interface {
	List(ctx context.Context) ([]T, error)
	Insert(ctx context.Context, v T) error
	Update(ctx context.Context, id string, v T) error
	Delete(ctx context.Context, id string) error
}
