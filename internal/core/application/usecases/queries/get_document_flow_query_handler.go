package queries

import (
	"context"
	"time"

	"maintenance/internal/core/domain/model/docflow"
	"maintenance/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDocumentFlowQueryHandler reads the append-only ledger of one order from
// the database, oldest entry first. The ledger table is insert-only, so a
// plain read always sees a consistent trail.
type GetDocumentFlowQueryHandler struct {
	db *gorm.DB
}

// NewGetDocumentFlowQueryHandler creates a handler for document flow queries.
func NewGetDocumentFlowQueryHandler(db *gorm.DB) GetDocumentFlowQueryHandler {
	return GetDocumentFlowQueryHandler{db: db}
}

// Handle executes the document flow query. An order without entries yields
// an empty trail, not an error.
func (h GetDocumentFlowQueryHandler) Handle(
	ctx context.Context, query GetDocumentFlowQuery,
) ([]GetDocumentFlowQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			document_type,
			document_number,
			occurred_at,
			actor,
			detail
		FROM document_flow
		WHERE order_number = ?
	`
	args := []any{query.OrderNumber().String()}
	if query.DocumentType() != nil {
		sql += " AND document_type = ?"
		args = append(args, query.DocumentType().String())
	}
	sql += " ORDER BY occurred_at, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetDocumentFlowQueryResponse, 0)

	for rows.Next() {
		var (
			id             uuid.UUID
			documentType   string
			documentNumber string
			occurredAt     time.Time
			actor          string
			detail         string
		)

		err = rows.Scan(
			&id,
			&documentType,
			&documentNumber,
			&occurredAt,
			&actor,
			&detail,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		parsedType, typeErr := docflow.ParseDocumentType(documentType)
		if typeErr != nil {
			return nil, typeErr
		}

		entries = append(entries, GetDocumentFlowQueryResponse{
			ID:             entryID,
			OrderNumber:    query.OrderNumber(),
			DocumentType:   parsedType,
			DocumentNumber: documentNumber,
			OccurredAt:     occurredAt,
			Actor:          actor,
			Detail:         detail,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
