package docflow_test

import (
	"testing"
	"time"

	"maintenance/internal/core/domain/model/docflow"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createOrderNumber(t *testing.T) kernel.OrderNumber {
	t.Helper()
	number, err := kernel.NewGeneralOrderNumber(42)
	require.NoError(t, err)
	return number
}

func TestNewEntry(t *testing.T) {
	t.Run("should create entry with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		number := createOrderNumber(t)
		occurredAt := time.Now()

		e, err := docflow.NewEntry(
			id, number, docflow.DocGoodsIssue, "GI-0001", "storekeeper", "2 PC MAT-001", occurredAt)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.True(t, e.ID().IsEqual(id))
		assert.True(t, e.OrderNumber().IsEqual(number))
		assert.Equal(t, docflow.DocGoodsIssue, e.DocumentType())
		assert.Equal(t, "GI-0001", e.DocumentNumber())
		assert.Equal(t, "storekeeper", e.Actor())
		assert.Equal(t, "2 PC MAT-001", e.Detail())
		assert.Equal(t, occurredAt, e.OccurredAt())
	})

	t.Run("should allow empty detail", func(t *testing.T) {
		e, err := docflow.NewEntry(
			kernel.NewUUID(), createOrderNumber(t), docflow.DocOrderCreated,
			"MO-000042", "planner", "", time.Now())

		require.NoError(t, err)
		assert.Empty(t, e.Detail())
	})

	t.Run("should reject unknown document type", func(t *testing.T) {
		e, err := docflow.NewEntry(
			kernel.NewUUID(), createOrderNumber(t), docflow.DocumentType("invoice"),
			"INV-1", "clerk", "", time.Now())

		require.Error(t, err)
		assert.Nil(t, e)
	})

	t.Run("should reject missing document number", func(t *testing.T) {
		e, err := docflow.NewEntry(
			kernel.NewUUID(), createOrderNumber(t), docflow.DocConfirmation,
			"", "technician", "", time.Now())

		require.Error(t, err)
		assert.Nil(t, e)
	})

	t.Run("should reject missing actor", func(t *testing.T) {
		e, err := docflow.NewEntry(
			kernel.NewUUID(), createOrderNumber(t), docflow.DocConfirmation,
			"CONF-1", "", "", time.Now())

		require.Error(t, err)
		assert.Nil(t, e)
	})

	t.Run("should reject zero timestamp", func(t *testing.T) {
		e, err := docflow.NewEntry(
			kernel.NewUUID(), createOrderNumber(t), docflow.DocConfirmation,
			"CONF-1", "technician", "", time.Time{})

		require.Error(t, err)
		assert.Nil(t, e)
	})
}

func TestNewStatusChangeEntry(t *testing.T) {
	e, err := docflow.NewStatusChangeEntry(
		kernel.NewUUID(), createOrderNumber(t), order.Planned, order.Released,
		"supervisor", "release approved", time.Now())

	require.NoError(t, err)
	assert.Equal(t, docflow.DocStatusChange, e.DocumentType())
	assert.Equal(t, "Planned -> Released", e.DocumentNumber())
	assert.Equal(t, "release approved", e.Detail())
}

func TestParseDocumentType(t *testing.T) {
	dt, err := docflow.ParseDocumentType("Goods_Receipt")
	require.NoError(t, err)
	assert.Equal(t, docflow.DocGoodsReceipt, dt)

	dt, err = docflow.ParseDocumentType(" status_change ")
	require.NoError(t, err)
	assert.Equal(t, docflow.DocStatusChange, dt)

	_, err = docflow.ParseDocumentType("invoice")
	require.Error(t, err)
}
