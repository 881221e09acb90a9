package console

import (
	"context"
	"errors"

	"github.com/rdeano/dentacare/security"
)

// LoginRoute is where every denied admin screen sends the user.
const LoginRoute = "/admin/login"

// ErrNoSession means no session is active at all.
var ErrNoSession = errors.New("no active session")

// Guard is the per-screen admin check. Screens run Check on every
// activation; nothing is cached between invocations, so a revoked role
// takes effect on the next navigation.
type Guard struct {
	svc AuthService
}

func NewGuard(svc AuthService) *Guard {
	return &Guard{svc: svc}
}

// Check verifies an active session whose profile carries the admin role.
// The role decision is security.AuthorizeAdmin, the same function the
// server's middleware runs, and it fails closed: a lookup error denies like
// a non-admin role.
func (g *Guard) Check(ctx context.Context) error {
	session, err := g.svc.GetSession(ctx)
	if err != nil {
		return ErrNoSession
	}
	if session == nil {
		return ErrNoSession
	}
	return security.AuthorizeAdmin(ctx, g.svc, session.UserID)
}

// Redirect returns the route to navigate to, or "" when the screen may stay
// mounted.
func (g *Guard) Redirect(ctx context.Context) string {
	if err := g.Check(ctx); err != nil {
		return LoginRoute
	}
	return ""
}
