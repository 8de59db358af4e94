package errs_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("deliveryNote")

		assert.Equal(t, "deliveryNote", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: deliveryNote", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("title", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: title (cause: missing required field)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("price")

		assert.Equal(t, "price", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: price", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("-5 is not greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("price", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: price (cause: -5 is not greater than 0)", err.Error())
	})
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("user-1", "deliver order")

	assert.Equal(t, "user-1", err.CallerID)
	assert.Equal(t, "deliver order", err.Action)
	assert.Equal(t, "operation is forbidden: caller user-1 may not deliver order", err.Error())
	assert.Equal(t, errs.ErrForbidden, err.Unwrap())
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("in_progress", "accept delivery")

	assert.Equal(t, "in_progress", err.CurrentState)
	assert.Equal(t, "accept delivery", err.RequestedEvent)
	assert.Equal(t,
		"invalid state transition: cannot accept delivery from status in_progress",
		err.Error())
	assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
}

func TestRevisionLimitExceededError(t *testing.T) {
	err := errs.NewRevisionLimitExceededError(1, 1)

	assert.Equal(t, 1, err.Used)
	assert.Equal(t, 1, err.Allowance)
	assert.Equal(t, "revision limit exceeded: 1 of 1 revisions used", err.Error())
	assert.Equal(t, errs.ErrRevisionLimitExceeded, err.Unwrap())
}

func TestConcurrencyConflictError(t *testing.T) {
	err := errs.NewConcurrencyConflictError("order", "ord-9", 3)

	assert.Equal(t, "order", err.ParamName)
	assert.Equal(t, 3, err.ExpectedVersion)
	assert.Equal(t, "concurrency conflict: order ord-9 changed since version 3", err.Error())
	assert.Equal(t, errs.ErrConcurrencyConflict, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrForbidden)
		require.Error(t, errs.ErrInvalidState)
		require.Error(t, errs.ErrRevisionLimitExceeded)
		require.Error(t, errs.ErrConcurrencyConflict)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "operation is forbidden", errs.ErrForbidden.Error())
		assert.Equal(t, "invalid state transition", errs.ErrInvalidState.Error())
		assert.Equal(t, "revision limit exceeded", errs.ErrRevisionLimitExceeded.Error())
		assert.Equal(t, "concurrency conflict", errs.ErrConcurrencyConflict.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("price"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("title"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewForbiddenError("u", "cancel order"), errs.ErrForbidden)
		require.ErrorIs(t, errs.NewInvalidStateError("completed", "deliver"), errs.ErrInvalidState)
		require.ErrorIs(t, errs.NewRevisionLimitExceededError(1, 1), errs.ErrRevisionLimitExceeded)
		require.ErrorIs(t, errs.NewConcurrencyConflictError("order", "o", 1), errs.ErrConcurrencyConflict)
	})
}
