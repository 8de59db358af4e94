package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order on the platform, optionally
// filtered by status. Admin only.
type GetAllOrdersQuery struct {
	callerID   kernel.UUID
	callerRole kernel.Role
	status     string

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates an admin listing query. An empty status means
// no status filter.
func NewGetAllOrdersQuery(callerID kernel.UUID, callerRole kernel.Role, status string) (GetAllOrdersQuery, error) {
	if err := callerID.Validate(); err != nil {
		return GetAllOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("callerId", err)
	}
	if err := callerRole.Validate(); err != nil {
		return GetAllOrdersQuery{}, err
	}
	return GetAllOrdersQuery{
		callerID:   callerID,
		callerRole: callerRole,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// CallerID returns the requesting user.
func (q GetAllOrdersQuery) CallerID() kernel.UUID {
	return q.callerID
}

// CallerRole returns the requesting user's platform role.
func (q GetAllOrdersQuery) CallerRole() kernel.Role {
	return q.callerRole
}

// Status returns the optional status filter.
func (q GetAllOrdersQuery) Status() string {
	return q.status
}
