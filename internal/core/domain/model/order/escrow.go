package order

import (
	"marketplace/internal/pkg/errs"
)

// EscrowState tracks what happened to the buyer's payment for an order.
// Payment capture itself is simulated; the state still follows strict
// transitions so the workflow can never "release" money twice or refund
// money that was already paid out.
//
//	held ──release──> released        (only via delivery acceptance)
//	held ──refund───> refunded        (only via cancellation)
type EscrowState int

const (
	// EscrowUnknown represents an invalid or undefined escrow state.
	EscrowUnknown EscrowState = iota

	// EscrowHeld means the buyer's payment is secured and not yet payable
	// to the seller. Every order starts here.
	EscrowHeld

	// EscrowReleased means the held amount became payable to the seller.
	// Irreversible.
	EscrowReleased

	// EscrowRefunded means the held amount was returned to the buyer.
	// Irreversible.
	EscrowRefunded
)

func getEscrowStrings() map[EscrowState]string {
	return map[EscrowState]string{
		EscrowUnknown:  "unknown",
		EscrowHeld:     "held",
		EscrowReleased: "released",
		EscrowRefunded: "refunded",
	}
}

// EscrowStateFromString parses the persisted escrow state name.
func EscrowStateFromString(s string) (EscrowState, error) {
	for state, name := range getEscrowStrings() {
		if state != EscrowUnknown && name == s {
			return state, nil
		}
	}
	return EscrowUnknown, errs.NewValueIsInvalidError("escrowState")
}

// String returns the escrow state name used in persistence and API payloads.
func (e EscrowState) String() string {
	if str, ok := getEscrowStrings()[e]; ok {
		return str
	}
	return "unknown"
}

// Validate checks the EscrowState is one of the defined states.
func (e EscrowState) Validate() error {
	switch e {
	case EscrowHeld, EscrowReleased, EscrowRefunded:
		return nil
	default:
		return errs.NewValueIsInvalidError("escrowState")
	}
}

// Release transitions held funds to released. Only valid from EscrowHeld.
func (e EscrowState) Release() (EscrowState, error) {
	if e != EscrowHeld {
		return 0, errs.NewInvalidStateError(e.String(), "release escrow")
	}
	return EscrowReleased, nil
}

// Refund transitions held funds back to the buyer. Only valid from EscrowHeld.
func (e EscrowState) Refund() (EscrowState, error) {
	if e != EscrowHeld {
		return 0, errs.NewInvalidStateError(e.String(), "refund escrow")
	}
	return EscrowRefunded, nil
}
