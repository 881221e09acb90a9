package console

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Compile-time check to ensure fakeAuth implements AuthService
var _ AuthService = (*fakeAuth)(nil)

type fakeAuth struct {
	GetSessionFunc func(ctx context.Context) (*Session, error)
	RoleFunc       func(ctx context.Context, userID string) (string, error)
}

func (f *fakeAuth) GetSession(ctx context.Context) (*Session, error) {
	if f.GetSessionFunc != nil {
		return f.GetSessionFunc(ctx)
	}
	return nil, nil
}

func (f *fakeAuth) SignIn(ctx context.Context, email, password string) (*Session, error) {
	return nil, errors.New("SignIn not implemented in fake")
}

func (f *fakeAuth) SignUp(ctx context.Context, email, password string) (string, error) {
	return "", errors.New("SignUp not implemented in fake")
}

func (f *fakeAuth) SignOut(ctx context.Context) error { return nil }

func (f *fakeAuth) Role(ctx context.Context, userID string) (string, error) {
	if f.RoleFunc != nil {
		return f.RoleFunc(ctx, userID)
	}
	return "", errors.New("RoleFunc not implemented in fake")
}

func session(userID string) func(ctx context.Context) (*Session, error) {
	return func(ctx context.Context) (*Session, error) {
		return &Session{UserID: userID, AccessToken: "at", RefreshToken: "rt"}, nil
	}
}

func TestGuardRedirectsWithoutSession(t *testing.T) {
	guard := NewGuard(&fakeAuth{})

	assert.Error(t, guard.Check(context.Background()))
	assert.Equal(t, LoginRoute, guard.Redirect(context.Background()))
}

func TestGuardRedirectsOnSessionError(t *testing.T) {
	guard := NewGuard(&fakeAuth{
		GetSessionFunc: func(ctx context.Context) (*Session, error) {
			return nil, errors.New("session lookup failed")
		},
	})

	assert.Equal(t, LoginRoute, guard.Redirect(context.Background()))
}

func TestGuardRedirectsOnProfileLookupError(t *testing.T) {
	guard := NewGuard(&fakeAuth{
		GetSessionFunc: session("u1"),
		RoleFunc: func(ctx context.Context, userID string) (string, error) {
			return "", errors.New("profile lookup failed")
		},
	})

	// An ambiguous authorization state never grants access.
	assert.Equal(t, LoginRoute, guard.Redirect(context.Background()))
}

func TestGuardRedirectsForNonAdminRoles(t *testing.T) {
	for _, role := range []string{"", "patient", "staff", "Admin", "superadmin"} {
		role := role
		t.Run("role_"+role, func(t *testing.T) {
			guard := NewGuard(&fakeAuth{
				GetSessionFunc: session("u1"),
				RoleFunc: func(ctx context.Context, userID string) (string, error) {
					return role, nil
				},
			})
			assert.Equal(t, LoginRoute, guard.Redirect(context.Background()))
		})
	}
}

func TestGuardAllowsAdmin(t *testing.T) {
	guard := NewGuard(&fakeAuth{
		GetSessionFunc: session("u1"),
		RoleFunc: func(ctx context.Context, userID string) (string, error) {
			assert.Equal(t, "u1", userID, "role is looked up for the session's user")
			return "admin", nil
		},
	})

	assert.NoError(t, guard.Check(context.Background()))
	assert.Empty(t, guard.Redirect(context.Background()))
}
