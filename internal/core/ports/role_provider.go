package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// RoleProvider resolves a user's platform role. The workflow engine trusts
// the caller's identity from the transport layer but never their role claim.
//
// GetRole returns errs.ObjectNotFoundError for unknown users.
type RoleProvider interface {
	GetRole(ctx context.Context, userID kernel.UUID) (kernel.Role, error)
}
