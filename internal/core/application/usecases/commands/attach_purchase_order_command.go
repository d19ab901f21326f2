package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAttachPurchaseOrderCommandIsNotConstructed = errors.New(
		"AttachPurchaseOrderCommand must be created via NewAttachPurchaseOrderCommand constructor",
	)
)

// AttachPurchaseOrderCommand represents a request to create a purchase order
// and attach it to a maintenance order. The attachment fixes the PO's parent
// reference for good.
type AttachPurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber
	poNumber    string
	poType      order.POType
	totalValue  decimal.Decimal
	actor       string

	guard guard.ConstructorGuard
}

// NewAttachPurchaseOrderCommand creates a command to attach a purchase order.
func NewAttachPurchaseOrderCommand(
	orderNumber kernel.OrderNumber, poNumber string, poType order.POType,
	totalValue decimal.Decimal, actor string,
) (AttachPurchaseOrderCommand, error) {
	cmd := AttachPurchaseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setPONumber(poNumber),
		cmd.setPOType(poType),
		cmd.setTotalValue(totalValue),
		cmd.setActor(actor),
	); err != nil {
		return AttachPurchaseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachPurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrAttachPurchaseOrderCommandIsNotConstructed)
}

// OrderNumber returns the parent maintenance order.
func (c AttachPurchaseOrderCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// PONumber returns the procurement document number.
func (c AttachPurchaseOrderCommand) PONumber() string {
	return c.poNumber
}

// POType returns the procurement classification.
func (c AttachPurchaseOrderCommand) POType() order.POType {
	return c.poType
}

// TotalValue returns the total procurement value.
func (c AttachPurchaseOrderCommand) TotalValue() decimal.Decimal {
	return c.totalValue
}

// Actor returns who attaches the purchase order.
func (c AttachPurchaseOrderCommand) Actor() string {
	return c.actor
}

func (c *AttachPurchaseOrderCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *AttachPurchaseOrderCommand) setPONumber(poNumber string) error {
	if poNumber == "" {
		return errs.NewValueIsRequiredError("po number")
	}

	c.poNumber = poNumber
	return nil
}

func (c *AttachPurchaseOrderCommand) setPOType(poType order.POType) error {
	if err := poType.Validate(); err != nil {
		return err
	}

	c.poType = poType
	return nil
}

func (c *AttachPurchaseOrderCommand) setTotalValue(totalValue decimal.Decimal) error {
	if totalValue.IsNegative() {
		return errs.NewValueIsInvalidError("total value")
	}

	c.totalValue = totalValue
	return nil
}

func (c *AttachPurchaseOrderCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
