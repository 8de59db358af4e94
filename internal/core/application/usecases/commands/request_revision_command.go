package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRequestRevisionCommandIsNotConstructed = errors.New(
	"RequestRevisionCommand must be created via NewRequestRevisionCommand constructor",
)

// RequestRevisionCommand represents a buyer sending a delivered order back to
// the seller for rework. The note explains what needs to change and is
// relayed to the seller; the order only counts the request against its
// revision allowance.
type RequestRevisionCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	callerID kernel.UUID
	note     string

	guard guard.ConstructorGuard
}

// NewRequestRevisionCommand creates a command to request a revision.
// The revision note is required.
func NewRequestRevisionCommand(
	orderID kernel.UUID,
	callerID kernel.UUID,
	note string,
) (RequestRevisionCommand, error) {
	cmd := RequestRevisionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCallerID(callerID),
		cmd.setNote(note),
	); err != nil {
		return RequestRevisionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestRevisionCommand) Validate() error {
	return c.guard.Validate(ErrRequestRevisionCommandIsNotConstructed)
}

// OrderID returns the order being sent back.
func (c RequestRevisionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerID returns the user requesting the revision.
func (c RequestRevisionCommand) CallerID() kernel.UUID {
	return c.callerID
}

// Note returns the buyer's revision instructions.
func (c RequestRevisionCommand) Note() string {
	return c.note
}

func (c *RequestRevisionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	c.orderID = orderID
	return nil
}

func (c *RequestRevisionCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("callerId", err)
	}

	c.callerID = callerID
	return nil
}

func (c *RequestRevisionCommand) setNote(note string) error {
	if note == "" {
		return errs.NewValueIsRequiredError("revisionNote")
	}

	c.note = note
	return nil
}
