package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand represents a buyer approving delivered work,
// completing the order and releasing escrow to the seller.
type AcceptDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryCommand creates a command to accept a delivery.
func NewAcceptDeliveryCommand(orderID, callerID kernel.UUID) (AcceptDeliveryCommand, error) {
	cmd := AcceptDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCallerID(callerID),
	); err != nil {
		return AcceptDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

// OrderID returns the order being accepted.
func (c AcceptDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerID returns the user accepting the delivery.
func (c AcceptDeliveryCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *AcceptDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptDeliveryCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("callerId", err)
	}

	c.callerID = callerID
	return nil
}
