package sapmock_test

import (
	"context"
	"testing"

	"maintenance/internal/adapters/out/sapmock"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/services"
	"maintenance/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialsAvailability(t *testing.T) {
	materials := sapmock.NewMaterialsAvailability()

	t.Run("should default unknown materials to available", func(t *testing.T) {
		availability, err := materials.Check(context.Background(), "BEARING-6204")
		require.NoError(t, err)
		assert.Equal(t, services.Available, availability)
	})

	t.Run("should return the seeded availability", func(t *testing.T) {
		materials.SetAvailability("SEAL-KIT-9", services.Unavailable)
		availability, err := materials.Check(context.Background(), "SEAL-KIT-9")
		require.NoError(t, err)
		assert.Equal(t, services.Unavailable, availability)
	})
}

func TestPermitRegistry(t *testing.T) {
	registry := sapmock.NewPermitRegistry()
	orderNumber, err := kernel.NewGeneralOrderNumber(1)
	require.NoError(t, err)

	t.Run("should require no permits by default", func(t *testing.T) {
		facts, permErr := registry.Permits(context.Background(), orderNumber)
		require.NoError(t, permErr)
		assert.Empty(t, facts)
	})

	t.Run("should track seeded permits and approvals", func(t *testing.T) {
		registry.RequirePermit(orderNumber, "hot_work", false)

		facts, permErr := registry.Permits(context.Background(), orderNumber)
		require.NoError(t, permErr)
		require.Len(t, facts, 1)
		assert.False(t, facts[0].Approved)

		registry.ApprovePermit(orderNumber, "hot_work")

		facts, permErr = registry.Permits(context.Background(), orderNumber)
		require.NoError(t, permErr)
		require.Len(t, facts, 1)
		assert.True(t, facts[0].Approved)
	})
}

func TestTechnicianDirectory(t *testing.T) {
	directory := sapmock.NewTechnicianDirectory("tech-1")

	t.Run("should report seeded technicians as active", func(t *testing.T) {
		active, err := directory.IsActive(context.Background(), "tech-1")
		require.NoError(t, err)
		assert.True(t, active)
	})

	t.Run("should report unknown technicians as inactive", func(t *testing.T) {
		active, err := directory.IsActive(context.Background(), "stranger")
		require.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("should deactivate technicians", func(t *testing.T) {
		directory.Deactivate("tech-1")
		active, err := directory.IsActive(context.Background(), "tech-1")
		require.NoError(t, err)
		assert.False(t, active)
	})
}

func TestFinancialPostings(t *testing.T) {
	financial := sapmock.NewFinancialPostings()

	settlement := &services.SettlementDocument{
		ID:    kernel.NewUUID(),
		Total: decimal.NewFromInt(1200),
		Actor: "controller",
	}
	require.NoError(t, financial.Post(context.Background(), settlement))

	postings := financial.Postings()
	require.Len(t, postings, 1)
	assert.True(t, postings[0].Total.Equal(decimal.NewFromInt(1200)))
}

func TestSupervisorOverridePolicy(t *testing.T) {
	policy := sapmock.NewSupervisorOverridePolicy("chief")

	t.Run("should grant supervisors a permits and materials bypass", func(t *testing.T) {
		grant, err := policy.Authorize(context.Background(), "chief", "production stop")
		require.NoError(t, err)
		assert.True(t, grant.PermitsBypass)
		assert.True(t, grant.MaterialsBypass)
		assert.Equal(t, "chief", grant.Actor)
	})

	t.Run("should reject non-supervisors", func(t *testing.T) {
		_, err := policy.Authorize(context.Background(), "tech-1", "in a hurry")
		require.Error(t, err)
		assert.ErrorIs(t, err, ports.ErrUnauthorizedOverride)
	})

	t.Run("should reject overrides without a reason", func(t *testing.T) {
		_, err := policy.Authorize(context.Background(), "chief", "")
		require.Error(t, err)
	})
}
