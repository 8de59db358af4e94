package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAcceptCustomOrderCommandIsNotConstructed = errors.New(
	"AcceptCustomOrderCommand must be created via NewAcceptCustomOrderCommand constructor",
)

// AcceptCustomOrderCommand represents a recipient accepting a pending custom
// order proposal, which materializes it into a binding order.
type AcceptCustomOrderCommand struct { //nolint:recvcheck //using for validation
	customOrderID kernel.UUID
	callerID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptCustomOrderCommand creates a command to accept a proposal.
func NewAcceptCustomOrderCommand(customOrderID, callerID kernel.UUID) (AcceptCustomOrderCommand, error) {
	cmd := AcceptCustomOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomOrderID(customOrderID),
		cmd.setCallerID(callerID),
	); err != nil {
		return AcceptCustomOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptCustomOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptCustomOrderCommandIsNotConstructed)
}

// CustomOrderID returns the proposal being accepted.
func (c AcceptCustomOrderCommand) CustomOrderID() kernel.UUID {
	return c.customOrderID
}

// CallerID returns the user accepting the proposal.
func (c AcceptCustomOrderCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *AcceptCustomOrderCommand) setCustomOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customOrderId", err)
	}

	c.customOrderID = id
	return nil
}

func (c *AcceptCustomOrderCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("callerId", err)
	}

	c.callerID = callerID
	return nil
}
