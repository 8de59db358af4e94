// Package guard provides a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances detectable,
// so that entities and value objects can only be used when created through their
// designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error. This ensures validation always fails with a meaningful
// message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its constructor.
// The zero value is "not constructed" and fails Validate, which lets domain code
// reject structs that were instantiated directly.
//
// Example:
//
//	var ErrOrderNotConstructed = errors.New("Order must be created via NewOrder")
//
//	type Order struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewOrder(id kernel.UUID) *Order {
//	    return &Order{id: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (o *Order) Validate() error {
//	    return o.guard.Validate(ErrOrderNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
// Call this in the constructor of every guarded domain object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its constructor.
// Returns validationError for zero-value objects, or ErrDefaultConstructorGuard
// when validationError is nil. Returns nil for properly constructed objects.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
