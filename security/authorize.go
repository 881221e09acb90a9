package security

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// RoleSource resolves the role recorded for an authenticated identity.
type RoleSource interface {
	Role(ctx context.Context, userID string) (string, error)
}

// ErrNotAdmin is returned for every denied authorization, regardless of
// whether the profile was missing, the lookup failed, or the role differed.
var ErrNotAdmin = errors.New("not an admin")

// AuthorizeAdmin is the single authorization decision for admin access. Both
// the request middleware and the console's session guard call it, so the two
// layers cannot drift apart. It fails closed: a lookup error denies exactly
// like a non-admin role.
func AuthorizeAdmin(ctx context.Context, src RoleSource, userID string) error {
	if userID == "" {
		return ErrNotAdmin
	}

	role, err := src.Role(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotAdmin, err)
	}
	if role != "admin" {
		return ErrNotAdmin
	}
	return nil
}

// SQLRoleSource backs RoleSource with the profiles table.
type SQLRoleSource struct {
	DB *sql.DB
}

func (s SQLRoleSource) Role(ctx context.Context, userID string) (string, error) {
	var role string
	err := s.DB.QueryRowContext(ctx, `SELECT role FROM profiles WHERE id = $1`, userID).Scan(&role)
	if err != nil {
		return "", err
	}
	return role, nil
}
