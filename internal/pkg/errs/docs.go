// Package errs provides standardized error types for the marketplace workflow.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the error classes of the order workflow:
//   - ValueIsRequiredError: a required value is missing (empty delivery note)
//   - ValueIsInvalidError: a value is malformed (non-positive price, bad tier)
//   - ObjectNotFoundError: a referenced record does not exist
//   - ForbiddenError: the caller may not perform the requested transition
//   - InvalidStateError: the transition is not legal from the current status
//   - RevisionLimitExceededError: the revision allowance is consumed
//   - ConcurrencyConflictError: an optimistic version check failed on write
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrForbidden)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method resolving to the sentinel, so errors.Is classification
//     works across layer boundaries
//
// The HTTP adapter maps each sentinel to exactly one response status; no
// storage-layer detail ever reaches a caller unwrapped.
package errs
