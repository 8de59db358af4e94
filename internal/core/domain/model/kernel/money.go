package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// ErrMoneyIsNotConstructed indicates a Money value was not created through
// NewMoney. The zero value of Money is invalid by design so that unpriced
// orders cannot slip through validation.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money is a value object representing a positive monetary amount in the
// marketplace's single settlement currency. It is captured once in an order's
// terms snapshot and never changes afterwards.
//
// Money is immutable; arithmetic is intentionally absent because the workflow
// only ever holds, releases, or refunds the full amount.
//
// Example usage:
//
//	price, err := kernel.NewMoney(150)
//	if err != nil {
//	    // handle invalid amount
//	}
type Money struct {
	amount float64
}

// NewMoney creates a Money value from a positive amount.
// Returns ValueIsInvalidError for zero or negative amounts.
func NewMoney(amount float64) (Money, error) {
	if amount <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not greater than 0", amount))
	}
	return Money{amount: amount}, nil
}

// Amount returns the monetary amount.
func (m Money) Amount() float64 {
	return m.amount
}

// IsEqual compares two Money values by amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the amount formatted for logs and messages.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.amount)
}

// Validate checks the Money value was created through NewMoney.
// The zero value fails with ErrMoneyIsNotConstructed.
func (m Money) Validate() error {
	if m.amount <= 0 {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
