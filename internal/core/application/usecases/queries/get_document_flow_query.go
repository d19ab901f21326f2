package queries

import (
	"errors"
	"time"

	"maintenance/internal/core/domain/model/docflow"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/guard"
)

var (
	ErrGetDocumentFlowQueryIsNotConstructed = errors.New(
		"GetDocumentFlowQuery must be created via NewGetDocumentFlowQuery constructor",
	)
)

// GetDocumentFlowQuery retrieves the chronological document trail of one
// order, optionally narrowed to a single document type.
type GetDocumentFlowQuery struct {
	orderNumber  kernel.OrderNumber
	documentType *docflow.DocumentType

	guard guard.ConstructorGuard
}

// NewGetDocumentFlowQuery creates a query for an order's document flow.
// Pass a nil documentType to retrieve every entry.
func NewGetDocumentFlowQuery(
	orderNumber kernel.OrderNumber, documentType *docflow.DocumentType,
) (GetDocumentFlowQuery, error) {
	if err := orderNumber.Validate(); err != nil {
		return GetDocumentFlowQuery{}, err
	}
	if documentType != nil {
		if err := documentType.Validate(); err != nil {
			return GetDocumentFlowQuery{}, err
		}
	}

	return GetDocumentFlowQuery{
		orderNumber:  orderNumber,
		documentType: documentType,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDocumentFlowQuery) Validate() error {
	return q.guard.Validate(ErrGetDocumentFlowQueryIsNotConstructed)
}

// OrderNumber returns the order whose trail is requested.
func (q GetDocumentFlowQuery) OrderNumber() kernel.OrderNumber {
	return q.orderNumber
}

// DocumentType returns the optional type filter, nil when absent.
func (q GetDocumentFlowQuery) DocumentType() *docflow.DocumentType {
	return q.documentType
}

// GetDocumentFlowQueryResponse is one ledger entry of the document trail.
type GetDocumentFlowQueryResponse struct {
	ID             kernel.UUID
	OrderNumber    kernel.OrderNumber
	DocumentType   docflow.DocumentType
	DocumentNumber string
	OccurredAt     time.Time
	Actor          string
	Detail         string
}
