package order

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// DefaultRevisionAllowance is the number of revision requests a buyer may
// make on a delivered order before acceptance is forced.
const DefaultRevisionAllowance = 1

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder, NewNegotiatedOrder, or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// NewOrderNumber generates a human-readable order number of the form
// ORD-xxxx. Numbers are display identifiers only; uniqueness is carried by
// the order's UUID.
func NewOrderNumber() string {
	return fmt.Sprintf("ORD-%04d", rand.IntN(9000)+1000)
}

// Order is the aggregate root of the fulfillment workflow. It owns the
// status state machine (placement, delivery, revision, acceptance,
// completion, cancellation) and the escrow-state coupling: escrow is
// released only by delivery acceptance and refunded only by cancellation.
//
// Invariants:
//   - Identity, participants, and the terms snapshot never change after creation
//   - revisionsUsed never exceeds revisionAllowance
//   - Status moves only along the edges defined on Status
//   - Failed transitions leave the aggregate completely unchanged
//
// An order originates either from a catalog purchase (serviceID set) or from
// exactly one accepted custom order proposal (customOrderID set) — never both.
type Order struct {
	id            kernel.UUID
	number        string
	serviceID     *kernel.UUID
	customOrderID *kernel.UUID
	buyerID       kernel.UUID
	sellerID      kernel.UUID
	terms         Terms
	requirements  string

	status            Status
	escrow            EscrowState
	revisionsUsed     int
	revisionAllowance int
	deliveryNote      string
	deliveryFiles     []string
	everDelivered     bool

	createdAt   time.Time
	deliveryDue time.Time
	completedAt *time.Time

	version int

	guard guard.ConstructorGuard
}

// NewOrder creates an order from a catalog purchase. The terms must be the
// package snapshot taken from the catalog at this instant. The order starts
// in_progress with escrow held, zero revisions used, and a delivery due date
// of createdAt plus the promised delivery days.
func NewOrder(
	id kernel.UUID,
	number string,
	serviceID kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	terms Terms,
	requirements string,
	createdAt time.Time,
) (*Order, error) {
	if err := serviceID.Validate(); err != nil {
		return nil, err
	}
	sID := serviceID
	return newOrder(id, number, &sID, nil, buyerID, sellerID, terms, requirements, createdAt)
}

// NewNegotiatedOrder creates an order materialized from an accepted custom
// order proposal. There is no catalog service behind it; the terms carry the
// negotiated price and delivery window under the TierCustom tier name.
func NewNegotiatedOrder(
	id kernel.UUID,
	number string,
	customOrderID kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	terms Terms,
	requirements string,
	createdAt time.Time,
) (*Order, error) {
	if err := customOrderID.Validate(); err != nil {
		return nil, err
	}
	cID := customOrderID
	return newOrder(id, number, nil, &cID, buyerID, sellerID, terms, requirements, createdAt)
}

func newOrder(
	id kernel.UUID,
	number string,
	serviceID *kernel.UUID,
	customOrderID *kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	terms Terms,
	requirements string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		serviceID:         serviceID,
		customOrderID:     customOrderID,
		status:            StatusInProgress,
		escrow:            EscrowHeld,
		revisionAllowance: DefaultRevisionAllowance,
		version:           1,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setBuyerID(buyerID),
		o.setSellerID(sellerID),
		o.setTerms(terms),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if buyerID.IsEqual(sellerID) {
		return nil, errs.NewValueIsInvalidErrorWithCause("sellerId",
			errors.New("buyer and seller must be different users"))
	}

	o.requirements = requirements
	o.deliveryDue = o.createdAt.AddDate(0, 0, o.terms.DeliveryDays())
	return o, nil
}

// RestoreOrder reconstructs an order from persistence without replaying its
// transitions. All stored state, including the optimistic-concurrency
// version, is applied as-is after field validation.
func RestoreOrder(
	id kernel.UUID,
	number string,
	serviceID *kernel.UUID,
	customOrderID *kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	terms Terms,
	requirements string,
	status Status,
	escrow EscrowState,
	revisionsUsed int,
	revisionAllowance int,
	deliveryNote string,
	deliveryFiles []string,
	everDelivered bool,
	createdAt time.Time,
	deliveryDue time.Time,
	completedAt *time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		serviceID:     serviceID,
		customOrderID: customOrderID,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setBuyerID(buyerID),
		o.setSellerID(sellerID),
		o.setTerms(terms),
		o.setCreatedAt(createdAt),
		status.Validate(),
		escrow.Validate(),
	); err != nil {
		return nil, err
	}

	if revisionsUsed < 0 || revisionAllowance < 0 || revisionsUsed > revisionAllowance {
		return nil, errs.NewValueIsInvalidErrorWithCause("revisionsUsed",
			fmt.Errorf("%d used of %d allowed", revisionsUsed, revisionAllowance))
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not a valid version", version))
	}

	o.status = status
	o.escrow = escrow
	o.revisionsUsed = revisionsUsed
	o.revisionAllowance = revisionAllowance
	o.requirements = requirements
	o.deliveryNote = deliveryNote
	o.deliveryFiles = append([]string(nil), deliveryFiles...)
	o.everDelivered = everDelivered
	o.deliveryDue = deliveryDue
	o.completedAt = completedAt
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number (ORD-xxxx).
func (o *Order) Number() string {
	return o.number
}

// ServiceID returns the catalog service ordered, or nil for negotiated orders.
func (o *Order) ServiceID() *kernel.UUID {
	return o.serviceID
}

// CustomOrderID returns the originating proposal, or nil for catalog orders.
func (o *Order) CustomOrderID() *kernel.UUID {
	return o.customOrderID
}

// BuyerID returns the purchasing party.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// SellerID returns the fulfilling party.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// Terms returns the immutable contract snapshot.
func (o *Order) Terms() Terms {
	return o.terms
}

// Requirements returns the buyer-supplied brief, set once at creation.
func (o *Order) Requirements() string {
	return o.requirements
}

// Status returns the current workflow status.
func (o *Order) Status() Status {
	return o.status
}

// Escrow returns the current escrow state.
func (o *Order) Escrow() EscrowState {
	return o.escrow
}

// RevisionsUsed returns how many revision requests the buyer has made.
func (o *Order) RevisionsUsed() int {
	return o.revisionsUsed
}

// RevisionAllowance returns how many revision requests this order permits.
func (o *Order) RevisionAllowance() int {
	return o.revisionAllowance
}

// DeliveryNote returns the seller's note from the latest delivery.
func (o *Order) DeliveryNote() string {
	return o.deliveryNote
}

// DeliveryFiles returns a copy of the attachment list from the latest delivery.
func (o *Order) DeliveryFiles() []string {
	return append([]string(nil), o.deliveryFiles...)
}

// EverDelivered reports whether the seller has delivered at least once over
// the order's lifetime, including deliveries later sent back for revision.
func (o *Order) EverDelivered() bool {
	return o.everDelivered
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveryDue returns the target delivery date, derived from the placement
// time and the promised delivery days. Never independently settable.
func (o *Order) DeliveryDue() time.Time {
	return o.deliveryDue
}

// CompletedAt returns when the buyer accepted delivery, or nil.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Version returns the optimistic-concurrency token the order was loaded with.
func (o *Order) Version() int {
	return o.version
}

// Deliver submits the seller's work and moves the order to delivered.
//
// Only the order's seller may deliver, only from in_progress, and the
// delivery note is required. On any failed check the order is unchanged.
func (o *Order) Deliver(callerID kernel.UUID, note string, files []string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !callerID.IsEqual(o.sellerID) {
		return errs.NewForbiddenError(callerID.String(), "deliver work for this order")
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}
	if note == "" {
		return errs.NewValueIsRequiredError("deliveryNote")
	}

	o.status = newStatus
	o.deliveryNote = note
	o.deliveryFiles = append([]string(nil), files...)
	o.everDelivered = true
	return nil
}

// AcceptDelivery completes the order and releases escrow to the seller.
//
// Only the order's buyer may accept, and only from delivered. This is the
// single event that makes the held amount payable; it is irreversible.
func (o *Order) AcceptDelivery(callerID kernel.UUID, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !callerID.IsEqual(o.buyerID) {
		return errs.NewForbiddenError(callerID.String(), "accept delivery for this order")
	}

	newStatus, err := o.status.AcceptDelivery()
	if err != nil {
		return err
	}
	newEscrow, err := o.escrow.Release()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.escrow = newEscrow
	o.completedAt = &now
	return nil
}

// RequestRevision sends a delivered order back to the seller for rework.
//
// Only the order's buyer may request a revision. The revision allowance is
// checked before the status, so an exhausted allowance always surfaces as
// RevisionLimitExceededError regardless of the current state. The revision
// note is required; it is relayed to the seller through the message thread,
// not stored on the order.
func (o *Order) RequestRevision(callerID kernel.UUID, note string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !callerID.IsEqual(o.buyerID) {
		return errs.NewForbiddenError(callerID.String(), "request a revision for this order")
	}
	if o.revisionsUsed >= o.revisionAllowance {
		return errs.NewRevisionLimitExceededError(o.revisionsUsed, o.revisionAllowance)
	}

	newStatus, err := o.status.RequestRevision()
	if err != nil {
		return err
	}
	if note == "" {
		return errs.NewValueIsRequiredError("revisionNote")
	}

	o.status = newStatus
	o.revisionsUsed++
	return nil
}

// Cancel terminates the order and refunds escrow to the buyer.
//
// Policy: an admin may cancel any non-terminal order; the buyer or seller
// may cancel only while the order is in_progress and no delivery was ever
// made. Anyone else is forbidden.
func (o *Order) Cancel(callerID kernel.UUID, callerRole kernel.Role) error {
	if err := o.Validate(); err != nil {
		return err
	}

	isParty := callerID.IsEqual(o.buyerID) || callerID.IsEqual(o.sellerID)
	if callerRole != kernel.RoleAdmin && !isParty {
		return errs.NewForbiddenError(callerID.String(), "cancel this order")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	if callerRole != kernel.RoleAdmin && (o.status != StatusInProgress || o.everDelivered) {
		return errs.NewInvalidStateError(o.status.String(), "cancel order after delivery")
	}

	newEscrow, err := o.escrow.Refund()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.escrow = newEscrow
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.number = number
	return nil
}

func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyerId", err)
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sellerId", err)
	}
	o.sellerID = sellerID
	return nil
}

func (o *Order) setTerms(terms Terms) error {
	if err := terms.Validate(); err != nil {
		return err
	}
	o.terms = terms
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
