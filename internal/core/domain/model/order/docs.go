// Package order provides the domain model of the fulfillment workflow: the
// Order aggregate root, its Status state machine, the EscrowState coupled to
// it, and the immutable Terms snapshot captured at placement.
//
// Key business rules:
//   - An order starts in_progress with escrow held and zero revisions used
//   - Only the seller delivers; only the buyer accepts or requests revisions
//   - Accepting a delivery is the single event that releases escrow
//   - The revision loop (delivered -> in_progress) is bounded by the order's
//     revision allowance
//   - Completed and cancelled are terminal; cancellation refunds escrow
//
// The package follows the same aggregate conventions as the rest of the
// domain model: private fields, validated constructors, Restore* factories
// for persistence, and all-or-nothing transition methods.
package order
