package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetCustomOrdersQueryIsNotConstructed = errors.New(
	"GetCustomOrdersQuery must be created via NewGetCustomOrdersQuery constructor",
)

// GetCustomOrdersQuery retrieves the custom order proposals a user is
// involved in, whether they proposed them or received them.
type GetCustomOrdersQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomOrdersQuery creates a query for a user's proposals.
func NewGetCustomOrdersQuery(userID kernel.UUID) (GetCustomOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetCustomOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	return GetCustomOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomOrdersQueryIsNotConstructed)
}

// UserID returns the user whose proposals are requested.
func (q GetCustomOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// CustomOrderResponse is the read model of a custom order proposal.
type CustomOrderResponse struct {
	ID              kernel.UUID
	Number          string
	ManagerID       kernel.UUID
	RecipientID     kernel.UUID
	RecipientRole   string
	Title           string
	Description     string
	Price           float64
	DeliveryDays    int
	Status          string
	RejectionReason string
	OrderID         *kernel.UUID
	CreatedAt       time.Time
}
