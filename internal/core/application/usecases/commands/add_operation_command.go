package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAddOperationCommandIsNotConstructed = errors.New(
		"AddOperationCommand must be created via NewAddOperationCommand constructor",
	)
)

// AddOperationCommand represents a request to add a planned operation to an
// order whose scope is still editable.
type AddOperationCommand struct { //nolint:recvcheck //using for validation
	orderNumber  kernel.OrderNumber
	workCenter   string
	description  string
	plannedHours decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAddOperationCommand creates a command to add an operation.
func NewAddOperationCommand(
	orderNumber kernel.OrderNumber, workCenter, description string, plannedHours decimal.Decimal,
) (AddOperationCommand, error) {
	cmd := AddOperationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setWorkCenter(workCenter),
		cmd.setDescription(description),
		cmd.setPlannedHours(plannedHours),
	); err != nil {
		return AddOperationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOperationCommand) Validate() error {
	return c.guard.Validate(ErrAddOperationCommandIsNotConstructed)
}

// OrderNumber returns the order to extend.
func (c AddOperationCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// WorkCenter returns the executing work center.
func (c AddOperationCommand) WorkCenter() string {
	return c.workCenter
}

// Description returns the work description.
func (c AddOperationCommand) Description() string {
	return c.description
}

// PlannedHours returns the planned labor effort.
func (c AddOperationCommand) PlannedHours() decimal.Decimal {
	return c.plannedHours
}

func (c *AddOperationCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *AddOperationCommand) setWorkCenter(workCenter string) error {
	if workCenter == "" {
		return errs.NewValueIsRequiredError("work center")
	}

	c.workCenter = workCenter
	return nil
}

func (c *AddOperationCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}

func (c *AddOperationCommand) setPlannedHours(plannedHours decimal.Decimal) error {
	if plannedHours.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidError("planned hours")
	}

	c.plannedHours = plannedHours
	return nil
}
