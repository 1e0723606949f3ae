package kernel_test

import (
	"strings"
	"testing"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("generates_prefixed_identifier", func(t *testing.T) {
		id := kernel.NewOrderID()

		require.NoError(t, id.Validate())
		assert.True(t, strings.HasPrefix(id.String(), kernel.OrderIDPrefix))
		assert.Greater(t, len(id.String()), len(kernel.OrderIDPrefix))
	})

	t.Run("generates_unique_identifiers", func(t *testing.T) {
		a := kernel.NewOrderID()
		b := kernel.NewOrderID()

		assert.False(t, a.IsEqual(b))
	})
}

func TestOrderIDFromString(t *testing.T) {
	t.Run("keeps_existing_prefix", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("ORDER-001")

		require.NoError(t, err)
		assert.Equal(t, "ORDER-001", id.String())
	})

	t.Run("prepends_missing_prefix", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("001")

		require.NoError(t, err)
		assert.Equal(t, "ORDER-001", id.String())
	})

	t.Run("trims_surrounding_whitespace", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("  ORDER-001  ")

		require.NoError(t, err)
		assert.Equal(t, "ORDER-001", id.String())
	})

	t.Run("rejects_empty_code", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("   ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrderID_IsEqual(t *testing.T) {
	t.Run("equal_by_normalized_code", func(t *testing.T) {
		a, _ := kernel.OrderIDFromString("ORDER-001")
		b, _ := kernel.OrderIDFromString("001")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("different_codes_are_not_equal", func(t *testing.T) {
		a, _ := kernel.OrderIDFromString("ORDER-001")
		b, _ := kernel.OrderIDFromString("ORDER-002")

		assert.False(t, a.IsEqual(b))
	})
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var id kernel.OrderID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrOrderIDIsNotConstructed, err)
	})
}
