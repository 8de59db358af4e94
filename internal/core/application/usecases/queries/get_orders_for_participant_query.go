// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the database directly and return flat response
// structures; they never load or mutate aggregates.
package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrdersForParticipantQueryIsNotConstructed = errors.New(
	"GetOrdersForParticipantQuery must be created via NewGetOrdersForParticipantQuery constructor",
)

// GetOrdersForParticipantQuery retrieves the orders a user takes part in,
// on either side: purchases where they are the buyer and sales where they
// are the seller.
type GetOrdersForParticipantQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersForParticipantQuery creates a query for a user's orders.
func NewGetOrdersForParticipantQuery(userID kernel.UUID) (GetOrdersForParticipantQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrdersForParticipantQuery{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	return GetOrdersForParticipantQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersForParticipantQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersForParticipantQueryIsNotConstructed)
}

// UserID returns the participant whose orders are requested.
func (q GetOrdersForParticipantQuery) UserID() kernel.UUID {
	return q.userID
}

// OrderResponse is the read model of an order as exposed by listing and
// single-order queries.
type OrderResponse struct {
	ID                kernel.UUID
	Number            string
	BuyerID           kernel.UUID
	SellerID          kernel.UUID
	Status            string
	Escrow            string
	Tier              string
	Price             float64
	RevisionsUsed     int
	RevisionAllowance int
	CreatedAt         time.Time
	DeliveryDue       time.Time
}
