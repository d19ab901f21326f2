package queries_test

import (
	"testing"

	"maintenance/internal/core/application/usecases/queries"
	"maintenance/internal/core/domain/model/docflow"
	"maintenance/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDocumentFlowQuery_Valid(t *testing.T) {
	orderNumber, err := kernel.NewGeneralOrderNumber(11)
	require.NoError(t, err)

	query, err := queries.NewGetDocumentFlowQuery(orderNumber, nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderNumber, query.OrderNumber())
	assert.Nil(t, query.DocumentType())
}

func TestNewGetDocumentFlowQuery_WithTypeFilter(t *testing.T) {
	orderNumber, err := kernel.NewBreakdownOrderNumber(12)
	require.NoError(t, err)

	filter := docflow.DocGoodsIssue
	query, err := queries.NewGetDocumentFlowQuery(orderNumber, &filter)
	require.NoError(t, err)
	require.NotNil(t, query.DocumentType())
	assert.Equal(t, docflow.DocGoodsIssue, *query.DocumentType())
}

func TestNewGetDocumentFlowQuery_InvalidTypeFilter(t *testing.T) {
	orderNumber, err := kernel.NewGeneralOrderNumber(11)
	require.NoError(t, err)

	filter := docflow.DocumentType("teleportation")
	_, err = queries.NewGetDocumentFlowQuery(orderNumber, &filter)
	require.Error(t, err)
}

func TestGetDocumentFlowQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDocumentFlowQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDocumentFlowQueryIsNotConstructed)
}
