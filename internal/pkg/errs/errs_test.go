package errs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

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

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: invalid format)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("productCode")

	assert.Equal(t, "productCode", err.ParamName)
	assert.Equal(t, "value is required: productCode", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 150, 1, 100)

		assert.Equal(t, 150, err.Value)
		assert.Equal(t, "value is invalid: 150 is quantity, min value is 1, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestDuplicateOrderError(t *testing.T) {
	err := errs.NewDuplicateOrderError("EXT-001")

	assert.Equal(t, "EXT-001", err.ExternalOrderNumber)
	assert.Equal(t, "duplicate order: EXT-001", err.Error())
	require.ErrorIs(t, err, errs.ErrDuplicateOrder)
}

func TestInsufficientStockError(t *testing.T) {
	err := errs.NewInsufficientStockError("APPLE-RAW", 20, 5)

	assert.Equal(t, "APPLE-RAW", err.ItemCode)
	assert.Equal(t, 20, err.Requested)
	assert.Equal(t, 5, err.Available)
	assert.Equal(t, "insufficient stock: item APPLE-RAW, requested 20, available 5", err.Error())
	require.ErrorIs(t, err, errs.ErrInsufficientStock)
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("Waiting", "Shipping")

	assert.Equal(t, "invalid status transition: Waiting -> Shipping", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestConcurrencyConflictError(t *testing.T) {
	cause := errors.New("could not serialize access")
	err := errs.NewConcurrencyConflictError("item_balances", cause)

	assert.Equal(t, "item_balances", err.Resource)
	assert.Equal(t, "concurrency conflict: item_balances (cause: could not serialize access)", err.Error())
	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("quantity"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsRequiredError("productCode"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("quantity", -1, 0, 10), errs.ErrValueIsOutOfRange)
}
