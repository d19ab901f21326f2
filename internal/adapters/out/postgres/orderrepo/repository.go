package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const sequenceRowID = 1

var childPreloads = []string{
	"Operations", "Components", "PurchaseOrders",
	"GoodsMovements", "Confirmations", "MalfunctionReports",
}

// GormOrderRepository implements ports.OrderRepository using GORM. Updates
// are compare-and-swap on the version column: the row is only written when
// the stored version still matches the loaded one, and a mismatch surfaces
// as ports.ErrOrderLocked.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.OrderNumber, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order aggregate to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderNumber(), aggregate)
	return nil
}

// Update saves an existing order aggregate. The order row is written only if
// the stored version matches the aggregate's loaded version; the new row
// carries version+1. Children are upserted — child documents are append-only
// or mutated in place, never removed.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	children := dto
	dto.Operations = nil
	dto.Components = nil
	dto.PurchaseOrders = nil
	dto.GoodsMovements = nil
	dto.Confirmations = nil
	dto.MalfunctionReports = nil
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_number = ? AND version = ?", dto.OrderNumber, aggregate.Version()).
		Select("*").Omit(childPreloads...).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either the order vanished or another writer got there first.
		// The per-order lock makes the second case rare, not impossible.
		return fmt.Errorf("%w: %s", ports.ErrOrderLocked, dto.OrderNumber)
	}

	if err = r.upsertChildren(ctx, children); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderNumber(), aggregate)
	return nil
}

func (r *GormOrderRepository) upsertChildren(ctx context.Context, dto OrderDTO) error {
	db := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true})

	if len(dto.Operations) > 0 {
		if err := db.Create(&dto.Operations).Error; err != nil {
			return err
		}
	}
	if len(dto.Components) > 0 {
		if err := db.Create(&dto.Components).Error; err != nil {
			return err
		}
	}
	if len(dto.PurchaseOrders) > 0 {
		if err := db.Create(&dto.PurchaseOrders).Error; err != nil {
			return err
		}
	}
	if len(dto.GoodsMovements) > 0 {
		if err := db.Create(&dto.GoodsMovements).Error; err != nil {
			return err
		}
	}
	if len(dto.Confirmations) > 0 {
		if err := db.Create(&dto.Confirmations).Error; err != nil {
			return err
		}
	}
	if len(dto.MalfunctionReports) > 0 {
		if err := db.Create(&dto.MalfunctionReports).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByNumber retrieves the complete order aggregate by its business
// identifier.
func (r *GormOrderRepository) GetByNumber(
	ctx context.Context, orderNumber kernel.OrderNumber,
) (*order.Order, error) {
	if err := orderNumber.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	for _, preload := range childPreloads {
		db = db.Preload(preload)
	}

	var dto OrderDTO
	if err := db.First(&dto, "order_number = ?", orderNumber.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderNumber.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all orders currently in the given status.
func (r *GormOrderRepository) GetAllInStatus(
	ctx context.Context, status order.Status,
) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	for _, preload := range childPreloads {
		db = db.Preload(preload)
	}

	var dtos []OrderDTO
	if err := db.Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// NextSequence reserves the next value of the shared order-number sequence.
// The single sequence row is incremented atomically; MO- and BD- numbers both
// draw from it.
func (r *GormOrderRepository) NextSequence(ctx context.Context) (int64, error) {
	db := r.db.WithContext(ctx)

	seed := OrderSequenceDTO{ID: sequenceRowID, Value: 0}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return 0, err
	}

	var next int64
	err := db.Raw(`
		UPDATE order_sequence
		SET value = value + 1
		WHERE id = ?
		RETURNING value
	`, sequenceRowID).Scan(&next).Error
	if err != nil {
		return 0, err
	}

	return next, nil
}
