package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRejectCustomOrderCommandIsNotConstructed = errors.New(
	"RejectCustomOrderCommand must be created via NewRejectCustomOrderCommand constructor",
)

// RejectCustomOrderCommand represents a recipient declining a pending custom
// order proposal, with an optional reason for the manager.
type RejectCustomOrderCommand struct { //nolint:recvcheck //using for validation
	customOrderID kernel.UUID
	callerID      kernel.UUID
	reason        string

	guard guard.ConstructorGuard
}

// NewRejectCustomOrderCommand creates a command to reject a proposal.
func NewRejectCustomOrderCommand(
	customOrderID kernel.UUID,
	callerID kernel.UUID,
	reason string,
) (RejectCustomOrderCommand, error) {
	cmd := RejectCustomOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomOrderID(customOrderID),
		cmd.setCallerID(callerID),
	); err != nil {
		return RejectCustomOrderCommand{}, err
	}

	cmd.reason = reason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectCustomOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectCustomOrderCommandIsNotConstructed)
}

// CustomOrderID returns the proposal being rejected.
func (c RejectCustomOrderCommand) CustomOrderID() kernel.UUID {
	return c.customOrderID
}

// CallerID returns the user rejecting the proposal.
func (c RejectCustomOrderCommand) CallerID() kernel.UUID {
	return c.callerID
}

// Reason returns the optional rejection reason.
func (c RejectCustomOrderCommand) Reason() string {
	return c.reason
}

func (c *RejectCustomOrderCommand) setCustomOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customOrderId", err)
	}

	c.customOrderID = id
	return nil
}

func (c *RejectCustomOrderCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("callerId", err)
	}

	c.callerID = callerID
	return nil
}
