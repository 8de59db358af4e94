package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its full detail. Only the
// order's participants and admins may view it; the caller's role must be
// resolved by the transport layer before the query is built.
type GetOrderQuery struct {
	orderID    kernel.UUID
	callerID   kernel.UUID
	callerRole kernel.Role

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID, callerID kernel.UUID, callerRole kernel.Role) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := callerID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("callerId", err)
	}
	if err := callerRole.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID:    orderID,
		callerID:   callerID,
		callerRole: callerRole,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CallerID returns the requesting user.
func (q GetOrderQuery) CallerID() kernel.UUID {
	return q.callerID
}

// CallerRole returns the requesting user's platform role.
func (q GetOrderQuery) CallerRole() kernel.Role {
	return q.callerRole
}

// OrderDetailResponse extends the listing read model with the fields only
// shown on a single order: the brief, the latest delivery, and completion.
type OrderDetailResponse struct {
	OrderResponse
	Requirements  string
	DeliveryNote  string
	DeliveryFiles []string
	Features      []string
	DeliveryDays  int
}
