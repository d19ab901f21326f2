package services_test

import (
	"testing"
	"time"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCostEngine(t *testing.T) services.CostEngine {
	t.Helper()
	engine, err := services.NewCostEngine(decimal.NewFromInt(85))
	require.NoError(t, err)
	return engine
}

func TestNewCostEngine(t *testing.T) {
	t.Run("should create engine with positive labor rate", func(t *testing.T) {
		engine, err := services.NewCostEngine(decimal.NewFromInt(85))

		require.NoError(t, err)
		assert.True(t, engine.LaborRate().Equal(decimal.NewFromInt(85)))
	})

	t.Run("should reject non-positive labor rate", func(t *testing.T) {
		_, err := services.NewCostEngine(decimal.Zero)
		require.Error(t, err)

		_, err = services.NewCostEngine(decimal.NewFromInt(-5))
		require.Error(t, err)
	})
}

func TestCostEngineEstimate(t *testing.T) {
	engine := createCostEngine(t)

	t.Run("should estimate from components, operations and service POs", func(t *testing.T) {
		o := createGeneralOrder(t)
		addAssignedOperation(t, o) // 4 planned hours
		addCriticalComponent(t, o, "MAT-001")

		servicePO, err := order.NewPurchaseOrder(
			kernel.NewUUID(), "PO-2000", order.POTypeService, decimal.NewFromInt(1500))
		require.NoError(t, err)
		require.NoError(t, o.AttachPurchaseOrder(servicePO))

		materialPO, err := order.NewPurchaseOrder(
			kernel.NewUUID(), "PO-2001", order.POTypeMaterial, decimal.NewFromInt(999))
		require.NoError(t, err)
		require.NoError(t, o.AttachPurchaseOrder(materialPO))

		require.NoError(t, engine.Estimate(o))

		summary := o.CostSummary()
		assert.True(t, summary.IsComputed())
		assert.True(t, summary.Estimated(order.ElementMaterial).Equal(decimal.NewFromInt(100)))
		assert.True(t, summary.Estimated(order.ElementLabor).Equal(decimal.NewFromInt(340)))
		assert.True(t, summary.Estimated(order.ElementExternal).Equal(decimal.NewFromInt(1500)))
	})

	t.Run("should reject estimation after release", func(t *testing.T) {
		o := createGeneralOrder(t)
		addAssignedOperation(t, o)
		advanceToStatus(t, o, order.Released)

		err := engine.Estimate(o)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrEstimateNotAllowed)
	})
}

func TestCostEngineAccumulate(t *testing.T) {
	engine := createCostEngine(t)

	t.Run("goods issue should accumulate material cost idempotently", func(t *testing.T) {
		o := createGeneralOrder(t)
		addAssignedOperation(t, o)
		advanceToStatus(t, o, order.Released)

		m, err := order.NewGoodsIssue(
			kernel.NewUUID(), "MAT-001", "", decimal.NewFromInt(2), decimal.NewFromInt(75),
			"WH-01", "storekeeper", time.Now())
		require.NoError(t, err)
		require.NoError(t, o.RecordGoodsIssue(m))

		applied, err := engine.AccumulateGoodsIssue(o, m)
		require.NoError(t, err)
		assert.True(t, applied)

		applied, err = engine.AccumulateGoodsIssue(o, m)
		require.NoError(t, err)
		assert.False(t, applied)

		assert.True(t, o.CostSummary().Actual(order.ElementMaterial).Equal(decimal.NewFromInt(150)))
	})

	t.Run("confirmation should accumulate labor at the labor rate", func(t *testing.T) {
		o := createGeneralOrder(t)
		op := addAssignedOperation(t, o)
		advanceToStatus(t, o, order.Released)

		c, err := order.NewConfirmation(
			kernel.NewUUID(), op.ID(), decimal.NewFromInt(3), "done", "tech-7", time.Now())
		require.NoError(t, err)
		require.NoError(t, o.RecordConfirmation(c))

		applied, err := engine.AccumulateConfirmation(o, c)
		require.NoError(t, err)
		assert.True(t, applied)

		assert.True(t, o.CostSummary().Actual(order.ElementLabor).Equal(decimal.NewFromInt(255)))
	})

	t.Run("external confirmation should accumulate external cost", func(t *testing.T) {
		o := createGeneralOrder(t)
		op := addAssignedOperation(t, o)
		advanceToStatus(t, o, order.Released)

		c, err := order.NewConfirmation(
			kernel.NewUUID(), op.ID(), decimal.NewFromInt(2), "vendor work", "vendor", time.Now())
		require.NoError(t, err)
		c.MarkExternal()
		require.NoError(t, o.RecordConfirmation(c))

		applied, err := engine.AccumulateConfirmation(o, c)
		require.NoError(t, err)
		assert.True(t, applied)

		assert.True(t, o.CostSummary().Actual(order.ElementExternal).Equal(decimal.NewFromInt(170)))
		assert.True(t, o.CostSummary().Actual(order.ElementLabor).IsZero())
	})

	t.Run("service PO receipt should accumulate external cost", func(t *testing.T) {
		o := createGeneralOrder(t)
		addAssignedOperation(t, o)
		po, err := order.NewPurchaseOrder(
			kernel.NewUUID(), "PO-2000", order.POTypeService, decimal.NewFromInt(1500))
		require.NoError(t, err)
		require.NoError(t, o.AttachPurchaseOrder(po))
		advanceToStatus(t, o, order.Released)

		m, err := order.NewGoodsReceipt(
			kernel.NewUUID(), "SRV-001", "PO-2000", decimal.NewFromInt(1), decimal.NewFromInt(1500),
			"WH-01", "storekeeper", time.Now())
		require.NoError(t, err)
		require.NoError(t, o.RecordGoodsReceipt(m, true))

		applied, err := engine.AccumulateGoodsReceipt(o, m)
		require.NoError(t, err)
		assert.True(t, applied)

		assert.True(t, o.CostSummary().Actual(order.ElementExternal).Equal(decimal.NewFromInt(1500)))
	})

	t.Run("material PO receipt should not change actuals", func(t *testing.T) {
		o := createGeneralOrder(t)
		addAssignedOperation(t, o)
		po, err := order.NewPurchaseOrder(
			kernel.NewUUID(), "PO-2001", order.POTypeMaterial, decimal.NewFromInt(500))
		require.NoError(t, err)
		require.NoError(t, o.AttachPurchaseOrder(po))
		advanceToStatus(t, o, order.Released)

		m, err := order.NewGoodsReceipt(
			kernel.NewUUID(), "MAT-001", "PO-2001", decimal.NewFromInt(2), decimal.NewFromInt(75),
			"WH-01", "storekeeper", time.Now())
		require.NoError(t, err)
		require.NoError(t, o.RecordGoodsReceipt(m, true))

		applied, err := engine.AccumulateGoodsReceipt(o, m)
		require.NoError(t, err)
		assert.False(t, applied)

		assert.True(t, o.CostSummary().TotalActual().IsZero())
	})
}

func TestCostEngineSettle(t *testing.T) {
	engine := createCostEngine(t)

	t.Run("should settle a completed order with computed summary", func(t *testing.T) {
		o := createGeneralOrder(t)
		addAssignedOperation(t, o)
		require.NoError(t, engine.Estimate(o))
		advanceToStatus(t, o, order.Released)

		m, err := order.NewGoodsIssue(
			kernel.NewUUID(), "MAT-001", "", decimal.NewFromInt(1), decimal.NewFromInt(100),
			"WH-01", "storekeeper", time.Now())
		require.NoError(t, err)
		require.NoError(t, o.RecordGoodsIssue(m))
		_, err = engine.AccumulateGoodsIssue(o, m)
		require.NoError(t, err)

		advanceToStatus(t, o, order.Teco)
		settledAt := time.Now()

		doc, err := engine.Settle(o, "controller", settledAt)

		require.NoError(t, err)
		assert.True(t, doc.OrderNumber.IsEqual(o.OrderNumber()))
		assert.True(t, doc.Material.Equal(decimal.NewFromInt(100)))
		assert.True(t, doc.Total.Equal(decimal.NewFromInt(100)))
		// estimate was 340 labor, actual 100 material
		assert.True(t, doc.Variance.Equal(decimal.NewFromInt(-240)))
		assert.Equal(t, settledAt, doc.SettledAt)
		assert.Equal(t, "controller", doc.Actor)
	})

	t.Run("should fail closed before technical completion", func(t *testing.T) {
		o := createGeneralOrder(t)
		addAssignedOperation(t, o)
		require.NoError(t, engine.Estimate(o))
		advanceToStatus(t, o, order.Confirmed)

		doc, err := engine.Settle(o, "controller", time.Now())

		require.Error(t, err)
		assert.Nil(t, doc)
		assert.ErrorIs(t, err, services.ErrSettlementNotAllowed)
	})

	t.Run("should fail closed without a computed summary", func(t *testing.T) {
		o := createGeneralOrder(t)
		addAssignedOperation(t, o)
		advanceToStatus(t, o, order.Teco)

		doc, err := engine.Settle(o, "controller", time.Now())

		require.Error(t, err)
		assert.Nil(t, doc)
		assert.ErrorIs(t, err, services.ErrSettlementNotAllowed)
	})
}
