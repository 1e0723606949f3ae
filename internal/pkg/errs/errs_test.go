package errs_test

import (
	"errors"
	"testing"

	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "ORDER-123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "ORDER-123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: ORDER-123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "ORDER-123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: ORDER-123 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("sku")

		assert.Equal(t, "sku", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: sku", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("sku", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: sku (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 1500, 1, 999)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 1500, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 999, err.Max)
		assert.Equal(t, "value is invalid: 1500 is quantity, min value is 1, max value is 999", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", 0, 1, 999, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: 0 is quantity, min value is 1, max value is 999 (cause: validation failed)",
			err.Error())
	})

	t.Run("string_values_are_sanitized", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerId")

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, "value is required: customerId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("customerId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customerId (cause: missing required field)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error_messages_match_expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	})

	t.Run("errors_is_works_with_custom_errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "ORDER-123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("sku"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("quantity", 1500, 1, 999), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("customerId"), errs.ErrValueIsRequired)
	})
}
