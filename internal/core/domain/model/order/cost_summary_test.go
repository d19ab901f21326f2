package order_test

import (
	"testing"

	"maintenance/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCostSummary(t *testing.T) {
	s := order.NewCostSummary()

	require.NoError(t, s.Validate())
	assert.False(t, s.IsComputed())
	assert.True(t, s.TotalEstimated().IsZero())
	assert.True(t, s.TotalActual().IsZero())
	assert.Empty(t, s.ProcessedDocumentIDs())
}

func TestCostSummaryApplyEstimate(t *testing.T) {
	t.Run("should record the estimate per element", func(t *testing.T) {
		s := order.NewCostSummary()

		err := s.ApplyEstimate(
			decimal.NewFromInt(300), decimal.NewFromInt(680), decimal.NewFromInt(1500))

		require.NoError(t, err)
		assert.True(t, s.IsComputed())
		assert.True(t, s.Estimated(order.ElementMaterial).Equal(decimal.NewFromInt(300)))
		assert.True(t, s.Estimated(order.ElementLabor).Equal(decimal.NewFromInt(680)))
		assert.True(t, s.Estimated(order.ElementExternal).Equal(decimal.NewFromInt(1500)))
		assert.True(t, s.TotalEstimated().Equal(decimal.NewFromInt(2480)))
	})

	t.Run("should replace a previous estimate on re-planning", func(t *testing.T) {
		s := order.NewCostSummary()
		require.NoError(t, s.ApplyEstimate(
			decimal.NewFromInt(100), decimal.NewFromInt(100), decimal.Zero))

		err := s.ApplyEstimate(decimal.NewFromInt(250), decimal.NewFromInt(90), decimal.Zero)

		require.NoError(t, err)
		assert.True(t, s.Estimated(order.ElementMaterial).Equal(decimal.NewFromInt(250)))
		assert.True(t, s.TotalEstimated().Equal(decimal.NewFromInt(340)))
	})

	t.Run("should reject negative estimates", func(t *testing.T) {
		s := order.NewCostSummary()

		err := s.ApplyEstimate(decimal.NewFromInt(-1), decimal.Zero, decimal.Zero)

		require.Error(t, err)
		assert.False(t, s.IsComputed())
	})
}

func TestCostSummaryAddActual(t *testing.T) {
	t.Run("should accumulate actuals per element", func(t *testing.T) {
		s := order.NewCostSummary()

		applied, err := s.AddActual(order.ElementMaterial, decimal.NewFromInt(120), "GI-1")
		require.NoError(t, err)
		assert.True(t, applied)

		applied, err = s.AddActual(order.ElementMaterial, decimal.NewFromInt(80), "GI-2")
		require.NoError(t, err)
		assert.True(t, applied)

		assert.True(t, s.Actual(order.ElementMaterial).Equal(decimal.NewFromInt(200)))
		assert.True(t, s.TotalActual().Equal(decimal.NewFromInt(200)))
	})

	t.Run("should be idempotent per document id", func(t *testing.T) {
		s := order.NewCostSummary()

		applied, err := s.AddActual(order.ElementLabor, decimal.NewFromInt(170), "CONF-1")
		require.NoError(t, err)
		require.True(t, applied)

		applied, err = s.AddActual(order.ElementLabor, decimal.NewFromInt(170), "CONF-1")
		require.NoError(t, err)
		assert.False(t, applied)

		assert.True(t, s.Actual(order.ElementLabor).Equal(decimal.NewFromInt(170)))
		assert.True(t, s.HasProcessed("CONF-1"))
		assert.False(t, s.HasProcessed("CONF-2"))
	})

	t.Run("should require a document id", func(t *testing.T) {
		s := order.NewCostSummary()

		applied, err := s.AddActual(order.ElementExternal, decimal.NewFromInt(10), "")

		require.Error(t, err)
		assert.False(t, applied)
	})

	t.Run("should reject an unknown element", func(t *testing.T) {
		s := order.NewCostSummary()

		applied, err := s.AddActual(order.ElementUnknown, decimal.NewFromInt(10), "DOC-1")

		require.Error(t, err)
		assert.False(t, applied)
	})
}

func TestCostSummaryVariance(t *testing.T) {
	s := order.NewCostSummary()
	require.NoError(t, s.ApplyEstimate(
		decimal.NewFromInt(300), decimal.NewFromInt(680), decimal.Zero))

	applied, err := s.AddActual(order.ElementMaterial, decimal.NewFromInt(350), "GI-1")
	require.NoError(t, err)
	require.True(t, applied)
	applied, err = s.AddActual(order.ElementLabor, decimal.NewFromInt(600), "CONF-1")
	require.NoError(t, err)
	require.True(t, applied)

	assert.True(t, s.Variance(order.ElementMaterial).Equal(decimal.NewFromInt(50)))
	assert.True(t, s.Variance(order.ElementLabor).Equal(decimal.NewFromInt(-80)))
	assert.True(t, s.Variance(order.ElementExternal).IsZero())
	assert.True(t, s.TotalVariance().Equal(decimal.NewFromInt(-30)))
}

func TestRestoreCostSummary(t *testing.T) {
	estimated := map[order.CostElement]decimal.Decimal{
		order.ElementMaterial: decimal.NewFromInt(100),
		order.ElementLabor:    decimal.NewFromInt(200),
	}
	actual := map[order.CostElement]decimal.Decimal{
		order.ElementMaterial: decimal.NewFromInt(90),
	}

	s, err := order.RestoreCostSummary(estimated, actual, []string{"GI-1", "GI-2"}, true)

	require.NoError(t, err)
	require.NoError(t, s.Validate())
	assert.True(t, s.IsComputed())
	assert.True(t, s.Estimated(order.ElementLabor).Equal(decimal.NewFromInt(200)))
	assert.True(t, s.Actual(order.ElementMaterial).Equal(decimal.NewFromInt(90)))
	assert.True(t, s.Actual(order.ElementExternal).IsZero())
	assert.True(t, s.HasProcessed("GI-1"))
	assert.Equal(t, []string{"GI-1", "GI-2"}, s.ProcessedDocumentIDs())
}

func TestParseCostElement(t *testing.T) {
	e, err := order.ParseCostElement("Material")
	require.NoError(t, err)
	assert.Equal(t, order.ElementMaterial, e)

	e, err = order.ParseCostElement("labor")
	require.NoError(t, err)
	assert.Equal(t, order.ElementLabor, e)

	_, err = order.ParseCostElement("overhead")
	require.Error(t, err)
}
