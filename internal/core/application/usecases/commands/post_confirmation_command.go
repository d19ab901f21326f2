package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrPostConfirmationCommandIsNotConstructed = errors.New(
		"PostConfirmationCommand must be created via NewPostConfirmationCommand constructor",
	)
)

// PostConfirmationCommand represents a request to confirm work performed
// against one operation of a maintenance order.
type PostConfirmationCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber
	operationID kernel.UUID
	actualHours decimal.Decimal
	detail      string
	external    bool
	actor       string

	guard guard.ConstructorGuard
}

// NewPostConfirmationCommand creates a command to post a confirmation.
func NewPostConfirmationCommand(
	orderNumber kernel.OrderNumber, operationID kernel.UUID,
	actualHours decimal.Decimal, detail string, external bool, actor string,
) (PostConfirmationCommand, error) {
	cmd := PostConfirmationCommand{
		detail:   detail,
		external: external,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setOperationID(operationID),
		cmd.setActualHours(actualHours),
		cmd.setActor(actor),
	); err != nil {
		return PostConfirmationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PostConfirmationCommand) Validate() error {
	return c.guard.Validate(ErrPostConfirmationCommandIsNotConstructed)
}

// OrderNumber returns the order the confirmation is posted against.
func (c PostConfirmationCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// OperationID returns the confirmed operation.
func (c PostConfirmationCommand) OperationID() kernel.UUID {
	return c.operationID
}

// ActualHours returns the confirmed labor effort.
func (c PostConfirmationCommand) ActualHours() decimal.Decimal {
	return c.actualHours
}

// Detail returns the free-text work description.
func (c PostConfirmationCommand) Detail() string {
	return c.detail
}

// IsExternal reports whether the work was performed by an external provider.
func (c PostConfirmationCommand) IsExternal() bool {
	return c.external
}

// Actor returns who posts the confirmation.
func (c PostConfirmationCommand) Actor() string {
	return c.actor
}

func (c *PostConfirmationCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *PostConfirmationCommand) setOperationID(operationID kernel.UUID) error {
	if err := operationID.Validate(); err != nil {
		return err
	}

	c.operationID = operationID
	return nil
}

func (c *PostConfirmationCommand) setActualHours(actualHours decimal.Decimal) error {
	if actualHours.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidError("actual hours")
	}

	c.actualHours = actualHours
	return nil
}

func (c *PostConfirmationCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
