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

func TestBreakdownPolicyCreateFromNotification(t *testing.T) {
	policy := services.NewBreakdownPolicy()

	t.Run("should create urgent breakdown order with seeded operation", func(t *testing.T) {
		o, err := policy.CreateFromNotification(services.Notification{
			ID:          "NOTIF-100",
			EquipmentID: "PUMP-001",
			Description: "pump seized",
			ReportedBy:  "dispatcher",
		}, 7, time.Now())

		require.NoError(t, err)
		assert.Equal(t, "BD-000007", o.OrderNumber().String())
		assert.True(t, o.IsBreakdown())
		assert.Equal(t, order.PriorityUrgent, o.Priority())
		assert.Equal(t, "NOTIF-100", o.NotificationID())
		assert.Equal(t, "PUMP-001", o.Equipment().EquipmentID())

		require.Len(t, o.Operations(), 1)
		assert.Equal(t, "EMERGENCY", o.Operations()[0].WorkCenter())
		assert.Equal(t, "pump seized", o.Operations()[0].Description())
	})

	t.Run("should accept functional location instead of equipment id", func(t *testing.T) {
		o, err := policy.CreateFromNotification(services.Notification{
			ID:                 "NOTIF-101",
			FunctionalLocation: "PLANT-A/LINE-2",
			ReportedBy:         "dispatcher",
		}, 8, time.Now())

		require.NoError(t, err)
		assert.Equal(t, "PLANT-A/LINE-2", o.Equipment().FunctionalLocation())
		assert.Equal(t, "emergency response", o.Operations()[0].Description())
	})

	t.Run("should reject notification carrying both identifiers", func(t *testing.T) {
		o, err := policy.CreateFromNotification(services.Notification{
			ID:                 "NOTIF-102",
			EquipmentID:        "PUMP-001",
			FunctionalLocation: "PLANT-A/LINE-2",
			ReportedBy:         "dispatcher",
		}, 9, time.Now())

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject notification without id", func(t *testing.T) {
		o, err := policy.CreateFromNotification(services.Notification{
			EquipmentID: "PUMP-001",
			ReportedBy:  "dispatcher",
		}, 10, time.Now())

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestBreakdownPolicyEmergencyIssue(t *testing.T) {
	policy := services.NewBreakdownPolicy()

	t.Run("should post issue from emergency stock and auto-create component", func(t *testing.T) {
		o := createBreakdownOrder(t)
		advanceToStatus(t, o, order.Released)

		m, err := policy.EmergencyIssue(
			o, "MAT-099", decimal.NewFromInt(2), decimal.NewFromInt(40), "tech-7", time.Now())

		require.NoError(t, err)
		assert.Equal(t, services.EmergencyStockLocation, m.StorageLocation())
		assert.Empty(t, m.PONumber())
		assert.Len(t, o.GoodsMovements(), 1)

		component := o.FindComponentByMaterial("MAT-099")
		require.NotNil(t, component)
		assert.True(t, component.IsNonStock())
		assert.True(t, component.EstimatedCost().Equal(decimal.NewFromInt(80)))
	})

	t.Run("should not duplicate an existing component", func(t *testing.T) {
		o := createBreakdownOrder(t)
		existing, err := order.NewComponent(
			kernel.NewUUID(), "MAT-099", decimal.NewFromInt(1), "PC", decimal.NewFromInt(40))
		require.NoError(t, err)
		require.NoError(t, o.AddComponent(existing))
		advanceToStatus(t, o, order.Released)

		_, err = policy.EmergencyIssue(
			o, "MAT-099", decimal.NewFromInt(1), decimal.NewFromInt(40), "tech-7", time.Now())

		require.NoError(t, err)
		assert.Len(t, o.Components(), 1)
	})

	t.Run("should reject emergency issue for general orders", func(t *testing.T) {
		o := createGeneralOrder(t)
		addAssignedOperation(t, o)
		advanceToStatus(t, o, order.Released)

		m, err := policy.EmergencyIssue(
			o, "MAT-099", decimal.NewFromInt(1), decimal.NewFromInt(40), "tech-7", time.Now())

		require.Error(t, err)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, services.ErrEmergencyIssueNotAllowed)
	})

	t.Run("should reject emergency issue before release", func(t *testing.T) {
		o := createBreakdownOrder(t)

		m, err := policy.EmergencyIssue(
			o, "MAT-099", decimal.NewFromInt(1), decimal.NewFromInt(40), "tech-7", time.Now())

		require.Error(t, err)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, order.ErrPostingNotAllowed)
	})
}
