package customorder

import (
	"marketplace/internal/pkg/errs"
)

// Status represents the resolution state of a custom order proposal.
//
//	pending ──accept──> accepted     [terminal]
//	pending ──reject──> rejected     [terminal]
//
// A proposal resolves exactly once; both terminal states are immutable.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending means the proposal awaits the recipient's decision.
	StatusPending

	// StatusAccepted means the recipient accepted and a binding order was
	// materialized. Terminal.
	StatusAccepted

	// StatusRejected means the recipient declined. Terminal.
	StatusRejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusPending:  "pending",
		StatusAccepted: "accepted",
		StatusRejected: "rejected",
	}
}

// StatusFromString parses the persisted status name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}

// String returns the lowercase status name used in persistence and API payloads.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks the Status is one of the defined proposal states.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return nil
	default:
		return errs.NewValueIsInvalidError("status")
	}
}

// IsTerminal reports whether the proposal has been resolved.
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Accept transitions the status to Accepted. Only valid from Pending.
func (s Status) Accept() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewInvalidStateError(s.String(), "accept custom order")
	}
	return StatusAccepted, nil
}

// Reject transitions the status to Rejected. Only valid from Pending.
func (s Status) Reject() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewInvalidStateError(s.String(), "reject custom order")
	}
	return StatusRejected, nil
}
