package services

import (
	"errors"
	"time"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// EmergencyStockLocation is the storage location emergency goods issues draw
// from when no purchase order covers the material.
const EmergencyStockLocation = "EMERGENCY-STOCK"

var (
	// ErrEmergencyIssueNotAllowed is returned when an emergency goods issue is
	// requested for a general order. The no-PO path exists for breakdowns only.
	ErrEmergencyIssueNotAllowed = errors.New("emergency goods issue is only allowed for breakdown orders")
)

// Notification is the external fault notification a breakdown order is
// created from. Exactly one of EquipmentID / FunctionalLocation identifies
// the failed object.
type Notification struct {
	ID                 string
	EquipmentID        string
	FunctionalLocation string
	Description        string
	ReportedBy         string
}

// BreakdownPolicy implements the accelerated rules of emergency breakdown
// orders: creation straight from a fault notification and goods issues from
// emergency stock without a purchase order. The relaxed release rule lives
// in the ReadinessChecker; the mandatory malfunction report before TECO is
// part of its completion checklist.
type BreakdownPolicy struct{}

// NewBreakdownPolicy creates a new BreakdownPolicy instance.
func NewBreakdownPolicy() BreakdownPolicy {
	return BreakdownPolicy{}
}

// CreateFromNotification constructs a breakdown order from a fault
// notification: BD- numbering, urgent priority, equipment taken from the
// notification, and a seeded emergency-response operation so the order is
// dispatchable immediately.
func (p BreakdownPolicy) CreateFromNotification(
	notification Notification, sequence int64, now time.Time,
) (*order.Order, error) {
	if notification.ID == "" {
		return nil, errs.NewValueIsRequiredError("notification id")
	}
	if notification.ReportedBy == "" {
		return nil, errs.NewValueIsRequiredError("reported by")
	}

	orderNumber, err := kernel.NewBreakdownOrderNumber(sequence)
	if err != nil {
		return nil, err
	}

	equipment, err := kernel.RestoreEquipmentRef(notification.EquipmentID, notification.FunctionalLocation)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		orderNumber, order.TypeBreakdown, order.PriorityUrgent,
		equipment, notification.ID, notification.ReportedBy, now)
	if err != nil {
		return nil, err
	}

	description := notification.Description
	if description == "" {
		description = "emergency response"
	}
	operation, err := order.NewOperation(
		kernel.NewUUID(), "EMERGENCY", description, decimal.NewFromInt(2))
	if err != nil {
		return nil, err
	}
	if err = o.AddOperation(operation); err != nil {
		return nil, err
	}

	return o, nil
}

// EmergencyIssue posts a goods issue from emergency stock against a
// breakdown order. No purchase order is involved; when the order has no
// component for the material yet, one is auto-created as non-stock with the
// issue's cost as its estimate, so the scope record stays complete.
func (p BreakdownPolicy) EmergencyIssue(
	o *order.Order, materialRef string, quantity, unitCost decimal.Decimal,
	actor string, now time.Time,
) (*order.GoodsMovement, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if !o.IsBreakdown() {
		return nil, ErrEmergencyIssueNotAllowed
	}

	movement, err := order.NewGoodsIssue(
		kernel.NewUUID(), materialRef, "", quantity, unitCost,
		EmergencyStockLocation, actor, now)
	if err != nil {
		return nil, err
	}

	if o.FindComponentByMaterial(materialRef) == nil {
		component, cerr := order.NewComponent(
			kernel.NewUUID(), materialRef, quantity, "PC", movement.TotalCost())
		if cerr != nil {
			return nil, cerr
		}
		component.MarkNonStock()
		if cerr = o.AddComponent(component); cerr != nil {
			return nil, cerr
		}
	}

	if err = o.RecordGoodsIssue(movement); err != nil {
		return nil, err
	}

	return movement, nil
}
