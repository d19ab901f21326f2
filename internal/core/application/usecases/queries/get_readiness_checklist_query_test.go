package queries_test

import (
	"testing"

	"maintenance/internal/core/application/usecases/queries"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetReadinessChecklistQuery_Valid(t *testing.T) {
	orderNumber, err := kernel.NewGeneralOrderNumber(42)
	require.NoError(t, err)

	query, err := queries.NewGetReadinessChecklistQuery(orderNumber, order.Released)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderNumber, query.OrderNumber())
	assert.Equal(t, order.Released, query.Target())
}

func TestNewGetReadinessChecklistQuery_InvalidTarget(t *testing.T) {
	orderNumber, err := kernel.NewGeneralOrderNumber(42)
	require.NoError(t, err)

	_, err = queries.NewGetReadinessChecklistQuery(orderNumber, order.Unknown)
	require.Error(t, err)
}

func TestGetReadinessChecklistQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetReadinessChecklistQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetReadinessChecklistQueryIsNotConstructed)
}
