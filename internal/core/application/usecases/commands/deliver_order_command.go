package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents a seller submitting completed work on an
// order. Carries the caller identity, a mandatory delivery note, and optional
// file attachment references.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	callerID kernel.UUID
	note     string
	files    []string

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to submit a delivery.
// The delivery note is required; files are optional.
func NewDeliverOrderCommand(
	orderID kernel.UUID,
	callerID kernel.UUID,
	note string,
	files []string,
) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCallerID(callerID),
		cmd.setNote(note),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	cmd.files = append([]string(nil), files...)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the order being delivered.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerID returns the user submitting the delivery.
func (c DeliverOrderCommand) CallerID() kernel.UUID {
	return c.callerID
}

// Note returns the delivery note for the buyer.
func (c DeliverOrderCommand) Note() string {
	return c.note
}

// Files returns a copy of the attachment references.
func (c DeliverOrderCommand) Files() []string {
	return append([]string(nil), c.files...)
}

func (c *DeliverOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	c.orderID = orderID
	return nil
}

func (c *DeliverOrderCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("callerId", err)
	}

	c.callerID = callerID
	return nil
}

func (c *DeliverOrderCommand) setNote(note string) error {
	if note == "" {
		return errs.NewValueIsRequiredError("deliveryNote")
	}

	c.note = note
	return nil
}
