package queries

import (
	"errors"
	"time"

	"marketplace/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery retrieves in-progress orders that passed their
// delivery due date without the seller ever delivering. Due dates are
// informational: nothing transitions automatically, this view only feeds
// oversight and the overdue notice job.
type GetOverdueOrdersQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueOrdersQuery creates an overdue listing query evaluated
// against the given instant.
func NewGetOverdueOrdersQuery(asOf time.Time) GetOverdueOrdersQuery {
	return GetOverdueOrdersQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

// AsOf returns the instant overdueness is evaluated against.
func (q GetOverdueOrdersQuery) AsOf() time.Time {
	return q.asOf
}
