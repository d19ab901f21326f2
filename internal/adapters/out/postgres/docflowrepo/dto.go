// Package docflowrepo persists the append-only document-flow ledger.
// Rows are inserted and read, never updated or deleted.
package docflowrepo

import (
	"time"

	"maintenance/internal/core/domain/model/docflow"
	"maintenance/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO represents one ledger row. The composite index serves the
// per-order trail query in timestamp order.
type EntryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber    string    `gorm:"type:varchar(16);not null;index:idx_docflow_order_time,priority:1"`
	DocumentType   string    `gorm:"type:varchar(32);not null;index"`
	DocumentNumber string    `gorm:"type:varchar(64);not null"`
	OccurredAt     time.Time `gorm:"not null;index:idx_docflow_order_time,priority:2"`
	Actor          string    `gorm:"type:varchar(64);not null"`
	Detail         string    `gorm:"type:text"`
}

// TableName specifies the database table name for ledger entries.
func (EntryDTO) TableName() string {
	return "document_flow"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *docflow.Entry) EntryDTO {
	return EntryDTO{
		ID:             entry.ID().Bytes(),
		OrderNumber:    entry.OrderNumber().String(),
		DocumentType:   entry.DocumentType().String(),
		DocumentNumber: entry.DocumentNumber(),
		OccurredAt:     entry.OccurredAt(),
		Actor:          entry.Actor(),
		Detail:         entry.Detail(),
	}
}

// toDomain converts a database row to a ledger entry.
func toDomain(dto EntryDTO) (*docflow.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderNumber, err := kernel.OrderNumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	documentType, err := docflow.ParseDocumentType(dto.DocumentType)
	if err != nil {
		return nil, err
	}

	return docflow.RestoreEntry(
		id, orderNumber, documentType, dto.DocumentNumber, dto.Actor, dto.Detail, dto.OccurredAt)
}
