package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Each constructed error
// unwraps to exactly one of these, so callers can branch on the error class
// without inspecting the concrete type.
var (
	ErrValueIsRequired       = errors.New("value is required")
	ErrValueIsInvalid        = errors.New("value is invalid")
	ErrObjectNotFound        = errors.New("object not found")
	ErrForbidden             = errors.New("operation is forbidden")
	ErrInvalidState          = errors.New("invalid state transition")
	ErrRevisionLimitExceeded = errors.New("revision limit exceeded")
	ErrConcurrencyConflict   = errors.New("concurrency conflict")
)

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ValueIsRequiredError indicates a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for a missing required value
// with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value is present but malformed or out of
// the accepted domain (non-positive price, unknown package tier, bad enum).
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for an invalid value.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for an invalid value with
// an underlying cause explaining what exactly was wrong.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates a referenced object (order, custom order,
// service, user) does not exist in the store.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for a missing object.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an error for a missing object with
// an underlying cause (e.g. a storage-layer error).
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ForbiddenError indicates the caller's identity or role does not permit the
// requested operation (a buyer delivering work, a non-recipient resolving a
// custom order).
type ForbiddenError struct {
	CallerID string
	Action   string
	Cause    error
}

// NewForbiddenError creates an error for an operation the caller may not perform.
func NewForbiddenError(callerID string, action string) *ForbiddenError {
	return &ForbiddenError{CallerID: callerID, Action: action}
}

// NewForbiddenErrorWithCause creates a forbidden error with an underlying cause.
func NewForbiddenErrorWithCause(callerID string, action string, cause error) *ForbiddenError {
	return &ForbiddenError{CallerID: callerID, Action: action, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: caller %s may not %s (cause: %s)",
			ErrForbidden, sanitize(e.CallerID), sanitize(e.Action), e.Cause)
	}
	return fmt.Sprintf("%s: caller %s may not %s", ErrForbidden, sanitize(e.CallerID), sanitize(e.Action))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidStateError indicates the requested transition is not legal from the
// record's current status. The record is left unchanged.
type InvalidStateError struct {
	CurrentState   string
	RequestedEvent string
	Cause          error
}

// NewInvalidStateError creates an error for an illegal state transition.
func NewInvalidStateError(currentState string, requestedEvent string) *InvalidStateError {
	return &InvalidStateError{CurrentState: currentState, RequestedEvent: requestedEvent}
}

// NewInvalidStateErrorWithCause creates an illegal-transition error with an
// underlying cause.
func NewInvalidStateErrorWithCause(currentState string, requestedEvent string, cause error) *InvalidStateError {
	return &InvalidStateError{CurrentState: currentState, RequestedEvent: requestedEvent, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: cannot %s from status %s (cause: %s)",
			ErrInvalidState, sanitize(e.RequestedEvent), sanitize(e.CurrentState), e.Cause)
	}
	return fmt.Sprintf("%s: cannot %s from status %s",
		ErrInvalidState, sanitize(e.RequestedEvent), sanitize(e.CurrentState))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// RevisionLimitExceededError indicates the order's revision allowance is
// already consumed. Terminal for that order: no further revisions are possible.
type RevisionLimitExceededError struct {
	Used      int
	Allowance int
}

// NewRevisionLimitExceededError creates an error for an exhausted revision allowance.
func NewRevisionLimitExceededError(used int, allowance int) *RevisionLimitExceededError {
	return &RevisionLimitExceededError{Used: used, Allowance: allowance}
}

func (e *RevisionLimitExceededError) Error() string {
	return fmt.Sprintf("%s: %d of %d revisions used", ErrRevisionLimitExceeded, e.Used, e.Allowance)
}

func (e *RevisionLimitExceededError) Unwrap() error {
	return ErrRevisionLimitExceeded
}

// ConcurrencyConflictError indicates an optimistic-concurrency check failed on
// write: the record changed since it was read. Callers should reload the
// current state and decide whether to retry.
type ConcurrencyConflictError struct {
	ParamName       string
	ID              any
	ExpectedVersion int
}

// NewConcurrencyConflictError creates an error for a failed version check.
func NewConcurrencyConflictError(paramName string, id any, expectedVersion int) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{ParamName: paramName, ID: id, ExpectedVersion: expectedVersion}
}

func (e *ConcurrencyConflictError) Error() string {
	return fmt.Sprintf("%s: %s %s changed since version %d",
		ErrConcurrencyConflict, sanitize(e.ParamName), sanitize(e.ID), e.ExpectedVersion)
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}
