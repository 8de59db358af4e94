package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrProposeCustomOrderCommandIsNotConstructed = errors.New(
	"ProposeCustomOrderCommand must be created via NewProposeCustomOrderCommand constructor",
)

// ProposeCustomOrderCommand represents a campaign manager offering a
// negotiated engagement to a buyer or seller outside the catalog.
type ProposeCustomOrderCommand struct { //nolint:recvcheck //using for validation
	customOrderID kernel.UUID
	managerID     kernel.UUID
	recipientID   kernel.UUID
	title         string
	description   string
	price         kernel.Money
	deliveryDays  int

	guard guard.ConstructorGuard
}

// NewProposeCustomOrderCommand creates a command to propose a custom order.
// Validates identifiers, title, price, and delivery window; the recipient's
// role is resolved by the handler, not carried by the caller.
func NewProposeCustomOrderCommand(
	customOrderID kernel.UUID,
	managerID kernel.UUID,
	recipientID kernel.UUID,
	title string,
	description string,
	price kernel.Money,
	deliveryDays int,
) (ProposeCustomOrderCommand, error) {
	cmd := ProposeCustomOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomOrderID(customOrderID),
		cmd.setManagerID(managerID),
		cmd.setRecipientID(recipientID),
		cmd.setTitle(title),
		cmd.setPrice(price),
		cmd.setDeliveryDays(deliveryDays),
	); err != nil {
		return ProposeCustomOrderCommand{}, err
	}

	cmd.description = description
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProposeCustomOrderCommand) Validate() error {
	return c.guard.Validate(ErrProposeCustomOrderCommandIsNotConstructed)
}

// CustomOrderID returns the unique identifier for the new proposal.
func (c ProposeCustomOrderCommand) CustomOrderID() kernel.UUID {
	return c.customOrderID
}

// ManagerID returns the proposing campaign manager.
func (c ProposeCustomOrderCommand) ManagerID() kernel.UUID {
	return c.managerID
}

// RecipientID returns the user the proposal targets.
func (c ProposeCustomOrderCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// Title returns the proposal title.
func (c ProposeCustomOrderCommand) Title() string {
	return c.title
}

// Description returns the proposal description.
func (c ProposeCustomOrderCommand) Description() string {
	return c.description
}

// Price returns the negotiated price.
func (c ProposeCustomOrderCommand) Price() kernel.Money {
	return c.price
}

// DeliveryDays returns the negotiated delivery window in days.
func (c ProposeCustomOrderCommand) DeliveryDays() int {
	return c.deliveryDays
}

func (c *ProposeCustomOrderCommand) setCustomOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customOrderId", err)
	}

	c.customOrderID = id
	return nil
}

func (c *ProposeCustomOrderCommand) setManagerID(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("managerId", err)
	}

	c.managerID = managerID
	return nil
}

func (c *ProposeCustomOrderCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recipientId", err)
	}

	c.recipientID = recipientID
	return nil
}

func (c *ProposeCustomOrderCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *ProposeCustomOrderCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *ProposeCustomOrderCommand) setDeliveryDays(days int) error {
	if days <= 0 {
		return errs.NewValueIsInvalidError("deliveryDays")
	}

	c.deliveryDays = days
	return nil
}
