package order

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrComponentIsNotConstructed is returned when using an improperly initialized Component.
	ErrComponentIsNotConstructed = errors.New("Component must be created via NewComponent constructor")
	// ErrQuantityIsInvalid is returned when a component quantity is not positive.
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// Component is a material requirement of a maintenance order. A component
// may reference a material without master data ("non-stock"), in which case
// its cost is estimated rather than looked up. Critical components gate the
// release of general orders: they must be available or on order.
//
// A component may optionally be linked to the operation that consumes it;
// that link drives the goods-issue-before-confirmation rule.
type Component struct {
	// id uniquely identifies the component within the system
	id kernel.UUID
	// materialRef references the material, with or without master data
	materialRef string
	// nonStock marks materials without master data
	nonStock bool
	// quantity is the required quantity in unit
	quantity decimal.Decimal
	// unit is the unit of measure for quantity
	unit string
	// estimatedCost is the estimated total cost of the requirement
	estimatedCost decimal.Decimal
	// critical marks components whose availability gates release
	critical bool
	// operationID links the component to the consuming operation, if any
	operationID *kernel.UUID
	// guard ensures the component was properly constructed
	guard guard.ConstructorGuard
}

// NewComponent creates a material requirement. Material reference and unit
// are required, quantity must be positive, estimated cost must not be
// negative.
func NewComponent(
	id kernel.UUID, materialRef string, quantity decimal.Decimal, unit string, estimatedCost decimal.Decimal,
) (*Component, error) {
	c := &Component{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.setMaterialRef(materialRef),
		c.setQuantity(quantity),
		c.setUnit(unit),
		c.setEstimatedCost(estimatedCost),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreComponent reconstructs a component from persistence.
func RestoreComponent(
	id kernel.UUID, materialRef string, quantity decimal.Decimal, unit string,
	estimatedCost decimal.Decimal, nonStock, critical bool, operationID *kernel.UUID,
) (*Component, error) {
	c, err := NewComponent(id, materialRef, quantity, unit, estimatedCost)
	if err != nil {
		return nil, err
	}
	c.nonStock = nonStock
	c.critical = critical
	c.operationID = operationID
	return c, nil
}

// Validate ensures the Component was created through a constructor.
func (c *Component) Validate() error {
	if c == nil {
		return ErrComponentIsNotConstructed
	}
	return c.guard.Validate(ErrComponentIsNotConstructed)
}

// ID returns the component's unique identifier.
func (c *Component) ID() kernel.UUID {
	return c.id
}

// MaterialRef returns the material reference.
func (c *Component) MaterialRef() string {
	return c.materialRef
}

// IsNonStock reports whether the material lacks master data.
func (c *Component) IsNonStock() bool {
	return c.nonStock
}

// Quantity returns the required quantity.
func (c *Component) Quantity() decimal.Decimal {
	return c.quantity
}

// Unit returns the unit of measure.
func (c *Component) Unit() string {
	return c.unit
}

// EstimatedCost returns the estimated total cost of the requirement.
func (c *Component) EstimatedCost() decimal.Decimal {
	return c.estimatedCost
}

// IsCritical reports whether availability of this component gates release.
func (c *Component) IsCritical() bool {
	return c.critical
}

// OperationID returns the consuming operation's id, or nil when unlinked.
func (c *Component) OperationID() *kernel.UUID {
	return c.operationID
}

// MarkNonStock flags the component as lacking material master data.
func (c *Component) MarkNonStock() {
	c.nonStock = true
}

// MarkCritical flags the component as release-gating.
func (c *Component) MarkCritical() {
	c.critical = true
}

// LinkToOperation records which operation consumes the component.
func (c *Component) LinkToOperation(operationID kernel.UUID) error {
	if err := operationID.Validate(); err != nil {
		return err
	}
	c.operationID = &operationID
	return nil
}

func (c *Component) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Component) setMaterialRef(materialRef string) error {
	if materialRef == "" {
		return errs.NewValueIsRequiredError("material reference")
	}
	c.materialRef = materialRef
	return nil
}

func (c *Component) setQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}

func (c *Component) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}
	c.unit = unit
	return nil
}

func (c *Component) setEstimatedCost(estimatedCost decimal.Decimal) error {
	if estimatedCost.IsNegative() {
		return errs.NewValueIsInvalidError("estimated cost")
	}
	c.estimatedCost = estimatedCost
	return nil
}
