package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"
)

var (
	ErrAssignTechnicianCommandIsNotConstructed = errors.New(
		"AssignTechnicianCommand must be created via NewAssignTechnicianCommand constructor",
	)
)

// AssignTechnicianCommand represents a request to staff one operation of a
// maintenance order with a technician.
type AssignTechnicianCommand struct { //nolint:recvcheck //using for validation
	orderNumber  kernel.OrderNumber
	operationID  kernel.UUID
	technicianID string

	guard guard.ConstructorGuard
}

// NewAssignTechnicianCommand creates a command to assign a technician.
func NewAssignTechnicianCommand(
	orderNumber kernel.OrderNumber, operationID kernel.UUID, technicianID string,
) (AssignTechnicianCommand, error) {
	cmd := AssignTechnicianCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setOperationID(operationID),
		cmd.setTechnicianID(technicianID),
	); err != nil {
		return AssignTechnicianCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTechnicianCommand) Validate() error {
	return c.guard.Validate(ErrAssignTechnicianCommandIsNotConstructed)
}

// OrderNumber returns the order being staffed.
func (c AssignTechnicianCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// OperationID returns the operation to staff.
func (c AssignTechnicianCommand) OperationID() kernel.UUID {
	return c.operationID
}

// TechnicianID returns the technician to assign.
func (c AssignTechnicianCommand) TechnicianID() string {
	return c.technicianID
}

func (c *AssignTechnicianCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *AssignTechnicianCommand) setOperationID(operationID kernel.UUID) error {
	if err := operationID.Validate(); err != nil {
		return err
	}

	c.operationID = operationID
	return nil
}

func (c *AssignTechnicianCommand) setTechnicianID(technicianID string) error {
	if technicianID == "" {
		return errs.NewValueIsRequiredError("technician id")
	}

	c.technicianID = technicianID
	return nil
}
