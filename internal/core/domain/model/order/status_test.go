package order_test

import (
	"errors"
	"testing"

	"maintenance/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitionTo(t *testing.T) {
	t.Run("should allow every forward step of the workflow", func(t *testing.T) {
		steps := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Created, order.Planned},
			{order.Planned, order.Released},
			{order.Released, order.InProgress},
			{order.InProgress, order.Confirmed},
			{order.Confirmed, order.Teco},
		}

		for _, step := range steps {
			newStatus, err := step.from.TransitionTo(step.to)
			require.NoError(t, err, "%s -> %s", step.from, step.to)
			assert.Equal(t, step.to, newStatus)
		}
	})

	t.Run("should reject skipping a status", func(t *testing.T) {
		_, err := order.Created.TransitionTo(order.Released)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)

		var invalid *order.InvalidTransitionError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, order.Created, invalid.From)
		assert.Equal(t, order.Released, invalid.To)
	})

	t.Run("should reject backward transitions", func(t *testing.T) {
		_, err := order.Released.TransitionTo(order.Planned)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should reject self transitions", func(t *testing.T) {
		_, err := order.Planned.TransitionTo(order.Planned)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should reject any transition out of TECO", func(t *testing.T) {
		for _, target := range []order.Status{
			order.Created, order.Planned, order.Released, order.InProgress, order.Confirmed,
		} {
			_, err := order.Teco.TransitionTo(target)
			require.Error(t, err, "TECO -> %s", target)
			assert.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})

	t.Run("error message should name both statuses", func(t *testing.T) {
		_, err := order.InProgress.TransitionTo(order.Teco)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "InProgress")
		assert.Contains(t, err.Error(), "TECO")
	})
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, order.Teco.IsTerminal())

	for _, s := range []order.Status{
		order.Created, order.Planned, order.Released, order.InProgress, order.Confirmed,
	} {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse canonical and alternate spellings", func(t *testing.T) {
		tests := []struct {
			input    string
			expected order.Status
		}{
			{"Created", order.Created},
			{"created", order.Created},
			{"PLANNED", order.Planned},
			{"Released", order.Released},
			{"InProgress", order.InProgress},
			{"in_progress", order.InProgress},
			{"confirmed", order.Confirmed},
			{"TECO", order.Teco},
			{"teco", order.Teco},
			{"  teco  ", order.Teco},
		}

		for _, tt := range tests {
			s, err := order.ParseStatus(tt.input)
			require.NoError(t, err, tt.input)
			assert.Equal(t, tt.expected, s, tt.input)
		}
	})

	t.Run("should return error for unknown status", func(t *testing.T) {
		s, err := order.ParseStatus("cancelled")

		require.Error(t, err)
		assert.Equal(t, order.Unknown, s)
	})
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Created", order.Created.String())
	assert.Equal(t, "InProgress", order.InProgress.String())
	assert.Equal(t, "TECO", order.Teco.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatusValidate(t *testing.T) {
	for _, s := range []order.Status{
		order.Created, order.Planned, order.Released, order.InProgress, order.Confirmed, order.Teco,
	} {
		assert.NoError(t, s.Validate(), s.String())
	}

	assert.Error(t, order.Unknown.Validate())
	assert.Error(t, order.Status(42).Validate())
}
