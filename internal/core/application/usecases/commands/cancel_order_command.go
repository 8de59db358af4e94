package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order and refund its
// escrow. The handler resolves the caller's platform role; cancellation
// policy by role is enforced on the aggregate.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID, callerID kernel.UUID) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCallerID(callerID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order being cancelled.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerID returns the user requesting the cancellation.
func (c CancelOrderCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("callerId", err)
	}

	c.callerID = callerID
	return nil
}
