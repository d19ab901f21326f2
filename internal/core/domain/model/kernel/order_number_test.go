package kernel_test

import (
	"testing"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneralOrderNumber(t *testing.T) {
	t.Run("formats_sequence_with_MO_prefix", func(t *testing.T) {
		number, err := kernel.NewGeneralOrderNumber(42)

		require.NoError(t, err)
		assert.Equal(t, "MO-000042", number.String())
		assert.False(t, number.IsBreakdown())
	})

	t.Run("rejects_non_positive_sequence", func(t *testing.T) {
		_, err := kernel.NewGeneralOrderNumber(0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = kernel.NewGeneralOrderNumber(-5)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewBreakdownOrderNumber(t *testing.T) {
	number, err := kernel.NewBreakdownOrderNumber(7)

	require.NoError(t, err)
	assert.Equal(t, "BD-000007", number.String())
	assert.True(t, number.IsBreakdown())
}

func TestOrderNumberFromString(t *testing.T) {
	t.Run("accepts_canonical_forms", func(t *testing.T) {
		for _, s := range []string{"MO-000001", "BD-123456"} {
			number, err := kernel.OrderNumberFromString(s)
			require.NoError(t, err, s)
			assert.Equal(t, s, number.String())
		}
	})

	t.Run("rejects_foreign_namespaces_and_malformed_input", func(t *testing.T) {
		for _, s := range []string{"", "MO", "XX-000001", "MO-12", "MO-abcdef", "MO-0000001", "mo-000001"} {
			_, err := kernel.OrderNumberFromString(s)
			require.Error(t, err, s)
		}
	})
}

func TestOrderNumber_Validate(t *testing.T) {
	t.Run("constructed_number_is_valid", func(t *testing.T) {
		number, err := kernel.NewGeneralOrderNumber(1)
		require.NoError(t, err)
		require.NoError(t, number.Validate())
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var number kernel.OrderNumber
		require.ErrorIs(t, number.Validate(), errs.ErrValueIsRequired)
	})
}

func TestOrderNumber_IsEqual(t *testing.T) {
	a, _ := kernel.NewGeneralOrderNumber(5)
	b, _ := kernel.NewGeneralOrderNumber(5)
	c, _ := kernel.NewBreakdownOrderNumber(5)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
