package ports

import (
	"context"

	"maintenance/internal/core/domain/model/docflow"
	"maintenance/internal/core/domain/model/kernel"
)

// DocumentFlowRepository is the persistence contract of the append-only
// document-flow ledger. Append is the only mutation; there is no update and
// no delete, and queries never change the ledger.
type DocumentFlowRepository interface {
	// Append writes one ledger entry and returns its id. Entries recording a
	// status change must be appended in the same transaction as the change
	// itself.
	Append(ctx context.Context, entry *docflow.Entry) (kernel.UUID, error)

	// Query retrieves the entries of one order ordered by timestamp,
	// optionally filtered by document type (pass nil for all).
	Query(ctx context.Context, orderNumber kernel.OrderNumber, documentType *docflow.DocumentType) ([]*docflow.Entry, error)
}
