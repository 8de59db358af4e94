package customorder

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrCustomOrderIsNotConstructed is returned when a CustomOrder instance was
// not created through NewCustomOrder or RestoreCustomOrder.
var ErrCustomOrderIsNotConstructed = errors.New(
	"CustomOrder must be created via NewCustomOrder constructor")

// CustomOrder is a manager-initiated proposal for a non-catalog engagement.
// The manager negotiates title, description, price, and delivery window; the
// recipient (a buyer or a seller, captured as recipientRole) either rejects
// it or accepts it, at which point the proposal materializes into exactly one
// binding Order carrying the same price and delivery terms.
//
// Invariants:
//   - Terms are immutable after creation
//   - Status resolves from pending to exactly one of accepted/rejected
//   - Once terminal, no further mutation is permitted
//   - accepted implies a linked order ID
type CustomOrder struct {
	id            kernel.UUID
	number        string
	managerID     kernel.UUID
	recipientID   kernel.UUID
	recipientRole kernel.Role

	title        string
	description  string
	price        kernel.Money
	deliveryDays int

	status          Status
	rejectionReason string
	orderID         *kernel.UUID

	createdAt time.Time
	version   int

	guard guard.ConstructorGuard
}

// NewCustomOrder creates a pending proposal from a manager to a recipient.
// The recipient's role decides which side of the materialized order they
// will take and must be buyer or seller. Price and delivery window are
// validated the same way catalog package terms are.
func NewCustomOrder(
	id kernel.UUID,
	number string,
	managerID kernel.UUID,
	recipientID kernel.UUID,
	recipientRole kernel.Role,
	title string,
	description string,
	price kernel.Money,
	deliveryDays int,
	createdAt time.Time,
) (*CustomOrder, error) {
	co := &CustomOrder{
		status:  StatusPending,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		co.setID(id),
		co.setNumber(number),
		co.setManagerID(managerID),
		co.setRecipient(recipientID, recipientRole),
		co.setTitle(title),
		co.setPrice(price),
		co.setDeliveryDays(deliveryDays),
		co.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if managerID.IsEqual(recipientID) {
		return nil, errs.NewValueIsInvalidErrorWithCause("recipientId",
			errors.New("manager cannot propose to themselves"))
	}

	co.description = description
	return co, nil
}

// RestoreCustomOrder reconstructs a proposal from persistence.
func RestoreCustomOrder(
	id kernel.UUID,
	number string,
	managerID kernel.UUID,
	recipientID kernel.UUID,
	recipientRole kernel.Role,
	title string,
	description string,
	price kernel.Money,
	deliveryDays int,
	status Status,
	rejectionReason string,
	orderID *kernel.UUID,
	createdAt time.Time,
	version int,
) (*CustomOrder, error) {
	co := &CustomOrder{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		co.setID(id),
		co.setNumber(number),
		co.setManagerID(managerID),
		co.setRecipient(recipientID, recipientRole),
		co.setTitle(title),
		co.setPrice(price),
		co.setDeliveryDays(deliveryDays),
		co.setCreatedAt(createdAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if status == StatusAccepted && orderID == nil {
		return nil, errs.NewValueIsRequiredError("orderId")
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	co.description = description
	co.status = status
	co.rejectionReason = rejectionReason
	co.orderID = orderID
	co.version = version
	return co, nil
}

// Validate ensures the CustomOrder instance was properly constructed.
func (c *CustomOrder) Validate() error {
	if c == nil {
		return ErrCustomOrderIsNotConstructed
	}
	return c.guard.Validate(ErrCustomOrderIsNotConstructed)
}

// IsEqual compares two proposals by their unique identifiers.
func (c *CustomOrder) IsEqual(other *CustomOrder) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the proposal's unique identifier.
func (c *CustomOrder) ID() kernel.UUID {
	return c.id
}

// Number returns the human-readable proposal number (ORD-xxxx).
func (c *CustomOrder) Number() string {
	return c.number
}

// ManagerID returns the proposing campaign manager.
func (c *CustomOrder) ManagerID() kernel.UUID {
	return c.managerID
}

// RecipientID returns the buyer or seller the proposal targets.
func (c *CustomOrder) RecipientID() kernel.UUID {
	return c.recipientID
}

// RecipientRole returns which side of the deal the recipient takes.
func (c *CustomOrder) RecipientRole() kernel.Role {
	return c.recipientRole
}

// Title returns the proposal title.
func (c *CustomOrder) Title() string {
	return c.title
}

// Description returns the proposal description.
func (c *CustomOrder) Description() string {
	return c.description
}

// Price returns the negotiated price.
func (c *CustomOrder) Price() kernel.Money {
	return c.price
}

// DeliveryDays returns the negotiated delivery window in days.
func (c *CustomOrder) DeliveryDays() int {
	return c.deliveryDays
}

// Status returns the resolution state of the proposal.
func (c *CustomOrder) Status() Status {
	return c.status
}

// RejectionReason returns the recipient's reason, set only on rejection.
func (c *CustomOrder) RejectionReason() string {
	return c.rejectionReason
}

// OrderID returns the materialized order, set only after acceptance.
func (c *CustomOrder) OrderID() *kernel.UUID {
	return c.orderID
}

// CreatedAt returns the proposal time.
func (c *CustomOrder) CreatedAt() time.Time {
	return c.createdAt
}

// Version returns the optimistic-concurrency token the proposal was loaded with.
func (c *CustomOrder) Version() int {
	return c.version
}

// Accept resolves the proposal and materializes the binding Order in one
// step. Only the recipient may accept, and only while pending. The returned
// order carries the proposal's price and delivery days as its terms snapshot
// under the TierCustom tier, with the proposal description as requirements.
//
// Which side the recipient takes follows recipientRole: a targeted seller
// fulfills the order with the manager as buyer of record, a targeted buyer
// purchases with the manager as seller of record.
//
// The caller must persist both aggregates in one transaction: a proposal
// must never be observable as accepted without its order.
func (c *CustomOrder) Accept(callerID kernel.UUID, orderID kernel.UUID, now time.Time) (*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if !callerID.IsEqual(c.recipientID) {
		return nil, errs.NewForbiddenError(callerID.String(), "accept this custom order")
	}

	newStatus, err := c.status.Accept()
	if err != nil {
		return nil, err
	}

	terms, err := order.NewTerms(order.TierCustom, c.price, c.deliveryDays, nil)
	if err != nil {
		return nil, err
	}

	buyerID, sellerID := c.managerID, c.recipientID
	if c.recipientRole == kernel.RoleBuyer {
		buyerID, sellerID = c.recipientID, c.managerID
	}

	materialized, err := order.NewNegotiatedOrder(
		orderID, order.NewOrderNumber(), c.id,
		buyerID, sellerID, terms, c.description, now,
	)
	if err != nil {
		return nil, err
	}

	c.status = newStatus
	c.orderID = &orderID
	return materialized, nil
}

// Reject resolves the proposal negatively, storing an optional reason.
// Only the recipient may reject, and only while pending.
func (c *CustomOrder) Reject(callerID kernel.UUID, reason string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !callerID.IsEqual(c.recipientID) {
		return errs.NewForbiddenError(callerID.String(), "reject this custom order")
	}

	newStatus, err := c.status.Reject()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.rejectionReason = reason
	return nil
}

func (c *CustomOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *CustomOrder) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	c.number = number
	return nil
}

func (c *CustomOrder) setManagerID(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("managerId", err)
	}
	c.managerID = managerID
	return nil
}

func (c *CustomOrder) setRecipient(recipientID kernel.UUID, recipientRole kernel.Role) error {
	if err := recipientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recipientId", err)
	}
	if !recipientRole.IsParticipant() {
		return errs.NewValueIsInvalidErrorWithCause("recipientRole",
			errors.New("recipient must be a buyer or a seller"))
	}
	c.recipientID = recipientID
	c.recipientRole = recipientRole
	return nil
}

func (c *CustomOrder) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

func (c *CustomOrder) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}

func (c *CustomOrder) setDeliveryDays(days int) error {
	if days <= 0 {
		return errs.NewValueIsInvalidError("deliveryDays")
	}
	c.deliveryDays = days
	return nil
}

func (c *CustomOrder) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	c.createdAt = createdAt
	return nil
}
