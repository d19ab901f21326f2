package order

import (
	"errors"
	"time"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrGoodsMovementIsNotConstructed is returned when using an improperly initialized GoodsMovement.
var ErrGoodsMovementIsNotConstructed = errors.New("GoodsMovement must be created via NewGoodsReceipt or NewGoodsIssue")

// MovementDirection distinguishes inbound receipts from outbound issues.
type MovementDirection int

const (
	// MovementUnknown represents an invalid or undefined direction.
	MovementUnknown MovementDirection = iota
	// MovementReceipt is an inbound goods receipt (GR); it increases the
	// available material cost basis.
	MovementReceipt
	// MovementIssue is an outbound goods issue (GI); it is the basis for
	// actual material cost.
	MovementIssue
)

// String returns the canonical lowercase name of the direction.
func (d MovementDirection) String() string {
	switch d {
	case MovementReceipt:
		return "goods_receipt"
	case MovementIssue:
		return "goods_issue"
	default:
		return "unknown"
	}
}

// GoodsMovement is an immutable material movement record posted against a
// maintenance order. Once recorded it is never edited: corrections are
// posted as compensating movements.
type GoodsMovement struct {
	// id uniquely identifies the movement within the system
	id kernel.UUID
	// direction distinguishes receipt from issue
	direction MovementDirection
	// materialRef references the moved material
	materialRef string
	// poNumber links the movement to a purchase order, "" for emergency issues
	poNumber string
	// quantity is the moved quantity
	quantity decimal.Decimal
	// unitCost is the cost per unit at movement time
	unitCost decimal.Decimal
	// storageLocation is the source/target location
	storageLocation string
	// postedAt is the posting timestamp
	postedAt time.Time
	// actor is who posted the movement
	actor string
	// guard ensures the movement was properly constructed
	guard guard.ConstructorGuard
}

// NewGoodsReceipt creates an inbound movement record.
func NewGoodsReceipt(
	id kernel.UUID, materialRef, poNumber string, quantity, unitCost decimal.Decimal,
	storageLocation, actor string, postedAt time.Time,
) (*GoodsMovement, error) {
	return newGoodsMovement(id, MovementReceipt, materialRef, poNumber, quantity, unitCost, storageLocation, actor, postedAt)
}

// NewGoodsIssue creates an outbound movement record.
func NewGoodsIssue(
	id kernel.UUID, materialRef, poNumber string, quantity, unitCost decimal.Decimal,
	storageLocation, actor string, postedAt time.Time,
) (*GoodsMovement, error) {
	return newGoodsMovement(id, MovementIssue, materialRef, poNumber, quantity, unitCost, storageLocation, actor, postedAt)
}

func newGoodsMovement(
	id kernel.UUID, direction MovementDirection, materialRef, poNumber string,
	quantity, unitCost decimal.Decimal, storageLocation, actor string, postedAt time.Time,
) (*GoodsMovement, error) {
	m := &GoodsMovement{
		direction:       direction,
		poNumber:        poNumber,
		storageLocation: storageLocation,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setMaterialRef(materialRef),
		m.setQuantity(quantity),
		m.setUnitCost(unitCost),
		m.setActor(actor),
		m.setPostedAt(postedAt),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the GoodsMovement was created through a constructor.
func (m *GoodsMovement) Validate() error {
	if m == nil {
		return ErrGoodsMovementIsNotConstructed
	}
	return m.guard.Validate(ErrGoodsMovementIsNotConstructed)
}

// ID returns the movement's unique identifier.
func (m *GoodsMovement) ID() kernel.UUID {
	return m.id
}

// Direction returns whether the movement is a receipt or an issue.
func (m *GoodsMovement) Direction() MovementDirection {
	return m.direction
}

// MaterialRef returns the moved material's reference.
func (m *GoodsMovement) MaterialRef() string {
	return m.materialRef
}

// PONumber returns the linked purchase order number, or "" for emergency issues.
func (m *GoodsMovement) PONumber() string {
	return m.poNumber
}

// Quantity returns the moved quantity.
func (m *GoodsMovement) Quantity() decimal.Decimal {
	return m.quantity
}

// UnitCost returns the cost per unit at movement time.
func (m *GoodsMovement) UnitCost() decimal.Decimal {
	return m.unitCost
}

// TotalCost returns quantity × unit cost.
func (m *GoodsMovement) TotalCost() decimal.Decimal {
	return m.quantity.Mul(m.unitCost)
}

// StorageLocation returns the source or target storage location.
func (m *GoodsMovement) StorageLocation() string {
	return m.storageLocation
}

// PostedAt returns the posting timestamp.
func (m *GoodsMovement) PostedAt() time.Time {
	return m.postedAt
}

// Actor returns who posted the movement.
func (m *GoodsMovement) Actor() string {
	return m.actor
}

func (m *GoodsMovement) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *GoodsMovement) setMaterialRef(materialRef string) error {
	if materialRef == "" {
		return errs.NewValueIsRequiredError("material reference")
	}
	m.materialRef = materialRef
	return nil
}

func (m *GoodsMovement) setQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return ErrQuantityIsInvalid
	}
	m.quantity = quantity
	return nil
}

func (m *GoodsMovement) setUnitCost(unitCost decimal.Decimal) error {
	if unitCost.IsNegative() {
		return errs.NewValueIsInvalidError("unit cost")
	}
	m.unitCost = unitCost
	return nil
}

func (m *GoodsMovement) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	m.actor = actor
	return nil
}

func (m *GoodsMovement) setPostedAt(postedAt time.Time) error {
	if postedAt.IsZero() {
		return errs.NewValueIsRequiredError("posted at")
	}
	m.postedAt = postedAt
	return nil
}
