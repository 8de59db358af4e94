package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a buyer purchasing a catalog service package.
// The package terms are resolved and snapshotted by the handler at execution
// time; the command only carries what the buyer chose.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, buyerID, serviceID, "standard", "brief text")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	buyerID      kernel.UUID
	serviceID    kernel.UUID
	tier         string
	requirements string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a catalog order.
// Validates that all identifiers are valid and a tier is named.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	buyerID kernel.UUID,
	serviceID kernel.UUID,
	tier string,
	requirements string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setBuyerID(buyerID),
		orderCommand.setServiceID(serviceID),
		orderCommand.setTier(tier),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.requirements = requirements
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the purchasing user.
func (c CreateOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// ServiceID returns the catalog service being ordered.
func (c CreateOrderCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// Tier returns the chosen package tier name.
func (c CreateOrderCommand) Tier() string {
	return c.tier
}

// Requirements returns the buyer's brief for the seller.
func (c CreateOrderCommand) Requirements() string {
	return c.requirements
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyerId", err)
	}

	c.buyerID = buyerID
	return nil
}

func (c *CreateOrderCommand) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("serviceId", err)
	}

	c.serviceID = serviceID
	return nil
}

func (c *CreateOrderCommand) setTier(tier string) error {
	if tier == "" {
		return errs.NewValueIsRequiredError("tier")
	}

	c.tier = tier
	return nil
}
