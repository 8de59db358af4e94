package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// TierCustom is the tier name recorded on orders materialized from custom
// order proposals, which bypass the catalog and have no real package tier.
const TierCustom = "custom"

// ErrTermsAreNotConstructed is returned when a Terms instance was not created
// through the NewTerms factory.
var ErrTermsAreNotConstructed = errors.New("Terms must be created via NewTerms constructor")

// Terms is the immutable contract snapshot captured when an order is placed:
// the package tier name, the price held in escrow, the promised delivery
// window in days, and the feature list sold. Later catalog edits never
// retroactively alter an existing order's terms.
type Terms struct {
	tier         string
	price        kernel.Money
	deliveryDays int
	features     []string

	guard guard.ConstructorGuard
}

// NewTerms creates a validated terms snapshot.
// The tier name is required, the price must be constructed and positive, and
// the delivery window must be at least one day. The feature list may be empty
// (custom proposals carry no feature list).
func NewTerms(tier string, price kernel.Money, deliveryDays int, features []string) (Terms, error) {
	terms := Terms{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		terms.setTier(tier),
		terms.setPrice(price),
		terms.setDeliveryDays(deliveryDays),
	); err != nil {
		return Terms{}, err
	}

	terms.features = append([]string(nil), features...)
	return terms, nil
}

// Validate ensures the Terms were created through NewTerms.
func (t Terms) Validate() error {
	return t.guard.Validate(ErrTermsAreNotConstructed)
}

// Tier returns the package tier name (basic, standard, premium, or custom).
func (t Terms) Tier() string {
	return t.tier
}

// Price returns the amount held in escrow for the order.
func (t Terms) Price() kernel.Money {
	return t.price
}

// DeliveryDays returns the promised delivery window in days.
func (t Terms) DeliveryDays() int {
	return t.deliveryDays
}

// Features returns a copy of the feature list sold with the package.
func (t Terms) Features() []string {
	return append([]string(nil), t.features...)
}

// IsEqual compares two terms snapshots field by field.
func (t Terms) IsEqual(other Terms) bool {
	if t.tier != other.tier || !t.price.IsEqual(other.price) || t.deliveryDays != other.deliveryDays {
		return false
	}
	if len(t.features) != len(other.features) {
		return false
	}
	for i := range t.features {
		if t.features[i] != other.features[i] {
			return false
		}
	}
	return true
}

func (t *Terms) setTier(tier string) error {
	if tier == "" {
		return errs.NewValueIsRequiredError("tier")
	}
	t.tier = tier
	return nil
}

func (t *Terms) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	t.price = price
	return nil
}

func (t *Terms) setDeliveryDays(days int) error {
	if days <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryDays",
			fmt.Errorf("%d is not greater than 0", days))
	}
	t.deliveryDays = days
	return nil
}
