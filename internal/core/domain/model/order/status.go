package order

import (
	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the escrow fulfillment workflow.
//
// State transitions:
//
//	in_progress ──deliver──> delivered ──accept──> completed
//	     ^                       │
//	     └──────revision─────────┘
//	(in_progress and delivered may also be cancelled)
//
// Completed and Cancelled are terminal. Status is a value object that
// validates transitions and provides string representations for persistence
// and API payloads.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusInProgress is the initial status: payment is held in escrow and
	// the seller is working. Orders return here after a revision request.
	StatusInProgress

	// StatusDelivered indicates the seller has submitted work and is waiting
	// for the buyer to accept or request a revision.
	StatusDelivered

	// StatusCompleted indicates the buyer accepted the delivery and escrow
	// was released. Terminal.
	StatusCompleted

	// StatusCancelled indicates the order was cancelled and escrow refunded.
	// Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusInProgress: "in_progress",
		StatusDelivered:  "delivered",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
	}
}

// StatusFromString parses the persisted status name.
// Returns ValueIsInvalidError for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}

// String returns the snake_case status name used in persistence and API
// payloads. Safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Status value is one of the defined workflow states.
func (s Status) Validate() error {
	switch s {
	case StatusInProgress, StatusDelivered, StatusCompleted, StatusCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidError("status")
	}
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - in_progress -> delivered
//
// Returns (0, InvalidStateError) from any other status.
func (s Status) Deliver() (Status, error) {
	if s != StatusInProgress {
		return 0, errs.NewInvalidStateError(s.String(), "deliver work")
	}
	return StatusDelivered, nil
}

// AcceptDelivery transitions the status to Completed.
//
// Valid transitions:
//   - delivered -> completed
//
// Returns (0, InvalidStateError) from any other status. Completed is a
// terminal state; acceptance is the sole path into it.
func (s Status) AcceptDelivery() (Status, error) {
	if s != StatusDelivered {
		return 0, errs.NewInvalidStateError(s.String(), "accept delivery")
	}
	return StatusCompleted, nil
}

// RequestRevision transitions the status back to InProgress.
//
// Valid transitions:
//   - delivered -> in_progress (the explicit revision loop)
//
// Returns (0, InvalidStateError) from any other status. The revision
// allowance is enforced by the Order aggregate, not here.
func (s Status) RequestRevision() (Status, error) {
	if s != StatusDelivered {
		return 0, errs.NewInvalidStateError(s.String(), "request revision")
	}
	return StatusInProgress, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - in_progress -> cancelled
//   - delivered -> cancelled
//
// Returns (0, InvalidStateError) from terminal states. Who may trigger the
// transition is an Order-level policy.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, errs.NewInvalidStateError(s.String(), "cancel order")
	}
	return StatusCancelled, nil
}
