package order

import (
	"errors"
	"fmt"
	"strings"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrPurchaseOrderIsNotConstructed is returned when using an improperly initialized PurchaseOrder.
	ErrPurchaseOrderIsNotConstructed = errors.New("PurchaseOrder must be created via NewPurchaseOrder constructor")
	// ErrPurchaseOrderAlreadyAttached is returned when attaching a PO that already belongs to an order.
	ErrPurchaseOrderAlreadyAttached = errors.New("purchase order is already attached to an order")
	// ErrPurchaseOrderNotAttached is returned when a lifecycle change is requested before attachment.
	ErrPurchaseOrderNotAttached = errors.New("purchase order is not attached to an order")
)

// POType classifies what a purchase order procures.
type POType int

const (
	// POTypeUnknown represents an invalid or undefined PO type.
	POTypeUnknown POType = iota
	// POTypeMaterial procures materials only.
	POTypeMaterial
	// POTypeService procures external services only.
	POTypeService
	// POTypeCombined procures both materials and services.
	POTypeCombined
)

// Validate checks if the POType value is valid.
func (t POType) Validate() error {
	if t < POTypeMaterial || t > POTypeCombined {
		return errs.NewValueIsInvalidErrorWithCause("po type", fmt.Errorf("%d is not a valid po type", t))
	}
	return nil
}

// String returns the canonical lowercase name of the PO type.
func (t POType) String() string {
	switch t {
	case POTypeMaterial:
		return "material"
	case POTypeService:
		return "service"
	case POTypeCombined:
		return "combined"
	default:
		return "unknown"
	}
}

// ParsePOType converts an external string to a POType, case-normalizing at
// the boundary.
func ParsePOType(s string) (POType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "material":
		return POTypeMaterial, nil
	case "service":
		return POTypeService, nil
	case "combined":
		return POTypeCombined, nil
	default:
		return POTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
			"po type", fmt.Errorf("%q is not a known po type", s))
	}
}

// POStatus is the procurement lifecycle of a purchase order.
type POStatus int

const (
	// POStatusUnknown represents an invalid or undefined PO status.
	POStatusUnknown POStatus = iota
	// POStatusCreated is the initial state after creation.
	POStatusCreated
	// POStatusOrdered indicates the PO was sent to the vendor.
	POStatusOrdered
	// POStatusPartiallyDelivered indicates some goods receipts were posted.
	POStatusPartiallyDelivered
	// POStatusDelivered indicates the PO is fully received and closed.
	POStatusDelivered
)

// Validate checks if the POStatus value is valid.
func (s POStatus) Validate() error {
	if s < POStatusCreated || s > POStatusDelivered {
		return errs.NewValueIsInvalidErrorWithCause("po status", fmt.Errorf("%d is not a valid po status", s))
	}
	return nil
}

// String returns the canonical lowercase name of the PO status.
func (s POStatus) String() string {
	switch s {
	case POStatusCreated:
		return "created"
	case POStatusOrdered:
		return "ordered"
	case POStatusPartiallyDelivered:
		return "partially_delivered"
	case POStatusDelivered:
		return "delivered"
	default:
		return "unknown"
	}
}

// PurchaseOrder is a child procurement document of a maintenance order.
// Its parent reference is set exactly once, when the PO is attached to an
// order, and never changes afterwards — the PO-Order linkage invariant.
// Procurement status advances independently of the parent's workflow but
// feeds it: TECO requires every PO to be delivered.
type PurchaseOrder struct {
	// id uniquely identifies the purchase order within the system
	id kernel.UUID
	// poNumber is the procurement document number
	poNumber string
	// orderNumber is the immutable parent order reference, set at attach time
	orderNumber kernel.OrderNumber
	// poType classifies the procurement
	poType POType
	// status is the procurement lifecycle state
	status POStatus
	// totalValue is the total procurement value
	totalValue decimal.Decimal
	// guard ensures the purchase order was properly constructed
	guard guard.ConstructorGuard
}

// NewPurchaseOrder creates an unattached purchase order in created status.
func NewPurchaseOrder(
	id kernel.UUID, poNumber string, poType POType, totalValue decimal.Decimal,
) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		status: POStatusCreated,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		po.setID(id),
		po.setPONumber(poNumber),
		po.setPOType(poType),
		po.setTotalValue(totalValue),
	); err != nil {
		return nil, err
	}

	return po, nil
}

// RestorePurchaseOrder reconstructs a purchase order from persistence.
func RestorePurchaseOrder(
	id kernel.UUID, poNumber string, orderNumber kernel.OrderNumber,
	poType POType, status POStatus, totalValue decimal.Decimal,
) (*PurchaseOrder, error) {
	po, err := NewPurchaseOrder(id, poNumber, poType, totalValue)
	if err != nil {
		return nil, err
	}
	if err = errors.Join(orderNumber.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	po.orderNumber = orderNumber
	po.status = status
	return po, nil
}

// Validate ensures the PurchaseOrder was created through a constructor.
func (po *PurchaseOrder) Validate() error {
	if po == nil {
		return ErrPurchaseOrderIsNotConstructed
	}
	return po.guard.Validate(ErrPurchaseOrderIsNotConstructed)
}

// ID returns the purchase order's unique identifier.
func (po *PurchaseOrder) ID() kernel.UUID {
	return po.id
}

// PONumber returns the procurement document number.
func (po *PurchaseOrder) PONumber() string {
	return po.poNumber
}

// OrderNumber returns the immutable parent order reference.
// The zero value indicates the PO is not yet attached.
func (po *PurchaseOrder) OrderNumber() kernel.OrderNumber {
	return po.orderNumber
}

// POType returns the procurement classification.
func (po *PurchaseOrder) POType() POType {
	return po.poType
}

// Status returns the procurement lifecycle state.
func (po *PurchaseOrder) Status() POStatus {
	return po.status
}

// TotalValue returns the total procurement value.
func (po *PurchaseOrder) TotalValue() decimal.Decimal {
	return po.totalValue
}

// IsOpen reports whether the purchase order still blocks technical
// completion of its parent order.
func (po *PurchaseOrder) IsOpen() bool {
	return po.status != POStatusDelivered
}

// attachTo fixes the parent order reference. Called exactly once by
// Order.AttachPurchaseOrder; re-attachment is a linkage violation.
func (po *PurchaseOrder) attachTo(orderNumber kernel.OrderNumber) error {
	if po.orderNumber.Validate() == nil {
		return ErrPurchaseOrderAlreadyAttached
	}
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	po.orderNumber = orderNumber
	return nil
}

// MarkOrdered records that the PO was sent to the vendor.
func (po *PurchaseOrder) MarkOrdered() error {
	if po.orderNumber.Validate() != nil {
		return ErrPurchaseOrderNotAttached
	}
	po.status = POStatusOrdered
	return nil
}

// RecordDelivery advances the procurement status from a goods receipt.
// A partial receipt moves the PO to partially_delivered; a final receipt
// closes it. Status changes never touch the parent reference.
func (po *PurchaseOrder) RecordDelivery(final bool) error {
	if po.orderNumber.Validate() != nil {
		return ErrPurchaseOrderNotAttached
	}
	if final {
		po.status = POStatusDelivered
	} else {
		po.status = POStatusPartiallyDelivered
	}
	return nil
}

func (po *PurchaseOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	po.id = id
	return nil
}

func (po *PurchaseOrder) setPONumber(poNumber string) error {
	if poNumber == "" {
		return errs.NewValueIsRequiredError("po number")
	}
	po.poNumber = poNumber
	return nil
}

func (po *PurchaseOrder) setPOType(poType POType) error {
	if err := poType.Validate(); err != nil {
		return err
	}
	po.poType = poType
	return nil
}

func (po *PurchaseOrder) setTotalValue(totalValue decimal.Decimal) error {
	if totalValue.IsNegative() {
		return errs.NewValueIsInvalidError("total value")
	}
	po.totalValue = totalValue
	return nil
}
