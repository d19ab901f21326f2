package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAddComponentCommandIsNotConstructed = errors.New(
		"AddComponentCommand must be created via NewAddComponentCommand constructor",
	)
)

// AddComponentCommand represents a request to add a material requirement to
// an order. The component can be flagged non-stock or release-gating, and
// optionally linked to the operation that will consume it.
type AddComponentCommand struct { //nolint:recvcheck //using for validation
	orderNumber   kernel.OrderNumber
	materialRef   string
	quantity      decimal.Decimal
	unit          string
	estimatedCost decimal.Decimal
	nonStock      bool
	critical      bool
	operationID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddComponentCommand creates a command to add a component. The
// operationID is optional; when set, it links the component to its consuming
// operation, which makes the goods-issue-before-confirmation rule apply.
func NewAddComponentCommand(
	orderNumber kernel.OrderNumber, materialRef string, quantity decimal.Decimal,
	unit string, estimatedCost decimal.Decimal, nonStock, critical bool, operationID *kernel.UUID,
) (AddComponentCommand, error) {
	cmd := AddComponentCommand{
		nonStock: nonStock,
		critical: critical,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setMaterialRef(materialRef),
		cmd.setQuantity(quantity),
		cmd.setUnit(unit),
		cmd.setEstimatedCost(estimatedCost),
		cmd.setOperationID(operationID),
	); err != nil {
		return AddComponentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddComponentCommand) Validate() error {
	return c.guard.Validate(ErrAddComponentCommandIsNotConstructed)
}

// OrderNumber returns the order to extend.
func (c AddComponentCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// MaterialRef returns the required material.
func (c AddComponentCommand) MaterialRef() string {
	return c.materialRef
}

// Quantity returns the required quantity.
func (c AddComponentCommand) Quantity() decimal.Decimal {
	return c.quantity
}

// Unit returns the unit of measure.
func (c AddComponentCommand) Unit() string {
	return c.unit
}

// EstimatedCost returns the estimated total cost of the requirement.
func (c AddComponentCommand) EstimatedCost() decimal.Decimal {
	return c.estimatedCost
}

// IsNonStock reports whether the material lacks master data.
func (c AddComponentCommand) IsNonStock() bool {
	return c.nonStock
}

// IsCritical reports whether the component gates release.
func (c AddComponentCommand) IsCritical() bool {
	return c.critical
}

// OperationID returns the consuming operation's id, or nil.
func (c AddComponentCommand) OperationID() *kernel.UUID {
	return c.operationID
}

func (c *AddComponentCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *AddComponentCommand) setMaterialRef(materialRef string) error {
	if materialRef == "" {
		return errs.NewValueIsRequiredError("material reference")
	}

	c.materialRef = materialRef
	return nil
}

func (c *AddComponentCommand) setQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}

func (c *AddComponentCommand) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}

	c.unit = unit
	return nil
}

func (c *AddComponentCommand) setEstimatedCost(estimatedCost decimal.Decimal) error {
	if estimatedCost.IsNegative() {
		return errs.NewValueIsInvalidError("estimated cost")
	}

	c.estimatedCost = estimatedCost
	return nil
}

func (c *AddComponentCommand) setOperationID(operationID *kernel.UUID) error {
	if operationID == nil {
		return nil
	}
	if err := operationID.Validate(); err != nil {
		return err
	}

	c.operationID = operationID
	return nil
}
