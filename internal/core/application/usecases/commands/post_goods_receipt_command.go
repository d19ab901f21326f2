package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrPostGoodsReceiptCommandIsNotConstructed = errors.New(
		"PostGoodsReceiptCommand must be created via NewPostGoodsReceiptCommand constructor",
	)
)

// PostGoodsReceiptCommand represents a request to post an inbound goods
// movement against a maintenance order, usually against one of its purchase
// orders. A final receipt closes the referenced PO.
type PostGoodsReceiptCommand struct { //nolint:recvcheck //using for validation
	orderNumber     kernel.OrderNumber
	materialRef     string
	poNumber        string
	quantity        decimal.Decimal
	unitCost        decimal.Decimal
	storageLocation string
	finalDelivery   bool
	actor           string

	guard guard.ConstructorGuard
}

// NewPostGoodsReceiptCommand creates a command to post a goods receipt.
// The PO number may be empty for receipts without procurement reference.
func NewPostGoodsReceiptCommand(
	orderNumber kernel.OrderNumber, materialRef, poNumber string,
	quantity, unitCost decimal.Decimal, storageLocation string, finalDelivery bool, actor string,
) (PostGoodsReceiptCommand, error) {
	cmd := PostGoodsReceiptCommand{
		poNumber:        poNumber,
		storageLocation: storageLocation,
		finalDelivery:   finalDelivery,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setMaterialRef(materialRef),
		cmd.setQuantity(quantity),
		cmd.setUnitCost(unitCost),
		cmd.setActor(actor),
	); err != nil {
		return PostGoodsReceiptCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PostGoodsReceiptCommand) Validate() error {
	return c.guard.Validate(ErrPostGoodsReceiptCommandIsNotConstructed)
}

// OrderNumber returns the order the receipt is posted against.
func (c PostGoodsReceiptCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// MaterialRef returns the received material.
func (c PostGoodsReceiptCommand) MaterialRef() string {
	return c.materialRef
}

// PONumber returns the referenced purchase order number, or "".
func (c PostGoodsReceiptCommand) PONumber() string {
	return c.poNumber
}

// Quantity returns the received quantity.
func (c PostGoodsReceiptCommand) Quantity() decimal.Decimal {
	return c.quantity
}

// UnitCost returns the cost per received unit.
func (c PostGoodsReceiptCommand) UnitCost() decimal.Decimal {
	return c.unitCost
}

// StorageLocation returns the receiving storage location.
func (c PostGoodsReceiptCommand) StorageLocation() string {
	return c.storageLocation
}

// IsFinalDelivery reports whether the receipt closes the referenced PO.
func (c PostGoodsReceiptCommand) IsFinalDelivery() bool {
	return c.finalDelivery
}

// Actor returns who posts the receipt.
func (c PostGoodsReceiptCommand) Actor() string {
	return c.actor
}

func (c *PostGoodsReceiptCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *PostGoodsReceiptCommand) setMaterialRef(materialRef string) error {
	if materialRef == "" {
		return errs.NewValueIsRequiredError("material reference")
	}

	c.materialRef = materialRef
	return nil
}

func (c *PostGoodsReceiptCommand) setQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}

func (c *PostGoodsReceiptCommand) setUnitCost(unitCost decimal.Decimal) error {
	if unitCost.IsNegative() {
		return errs.NewValueIsInvalidError("unit cost")
	}

	c.unitCost = unitCost
	return nil
}

func (c *PostGoodsReceiptCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
