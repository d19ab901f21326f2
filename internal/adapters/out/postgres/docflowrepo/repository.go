package docflowrepo

import (
	"context"

	"maintenance/internal/core/domain/model/docflow"
	"maintenance/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormDocumentFlowRepository implements ports.DocumentFlowRepository using
// GORM. Append is the only write; callers append status-change entries inside
// the same transaction as the order update.
type GormDocumentFlowRepository struct {
	db *gorm.DB
}

// NewGormDocumentFlowRepository creates a new GORM ledger repository.
func NewGormDocumentFlowRepository(db *gorm.DB) *GormDocumentFlowRepository {
	return &GormDocumentFlowRepository{db: db}
}

// Append writes one ledger entry and returns its id.
func (r *GormDocumentFlowRepository) Append(ctx context.Context, entry *docflow.Entry) (kernel.UUID, error) {
	if err := entry.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.UUID{}, err
	}

	return entry.ID(), nil
}

// Query retrieves the entries of one order ordered by timestamp, optionally
// filtered by document type.
func (r *GormDocumentFlowRepository) Query(
	ctx context.Context, orderNumber kernel.OrderNumber, documentType *docflow.DocumentType,
) ([]*docflow.Entry, error) {
	if err := orderNumber.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx).Where("order_number = ?", orderNumber.String())
	if documentType != nil {
		db = db.Where("document_type = ?", documentType.String())
	}

	var dtos []EntryDTO
	if err := db.Order("occurred_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*docflow.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
