package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"
)

var (
	ErrSettleOrderCommandIsNotConstructed = errors.New(
		"SettleOrderCommand must be created via NewSettleOrderCommand constructor",
	)
)

// SettleOrderCommand represents a request to settle the accumulated cost of
// a technically completed order to financial accounting.
type SettleOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber
	actor       string

	guard guard.ConstructorGuard
}

// NewSettleOrderCommand creates a command to settle an order.
func NewSettleOrderCommand(orderNumber kernel.OrderNumber, actor string) (SettleOrderCommand, error) {
	cmd := SettleOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setActor(actor),
	); err != nil {
		return SettleOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SettleOrderCommand) Validate() error {
	return c.guard.Validate(ErrSettleOrderCommandIsNotConstructed)
}

// OrderNumber returns the order to settle.
func (c SettleOrderCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// Actor returns who requests the settlement.
func (c SettleOrderCommand) Actor() string {
	return c.actor
}

func (c *SettleOrderCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *SettleOrderCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
