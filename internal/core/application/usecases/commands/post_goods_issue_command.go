package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrPostGoodsIssueCommandIsNotConstructed = errors.New(
		"PostGoodsIssueCommand must be created via NewPostGoodsIssueCommand constructor",
	)
)

// PostGoodsIssueCommand represents a request to post an outbound goods
// movement against a released maintenance order. The emergency flag selects
// the breakdown-only no-PO path from emergency stock.
type PostGoodsIssueCommand struct { //nolint:recvcheck //using for validation
	orderNumber     kernel.OrderNumber
	materialRef     string
	quantity        decimal.Decimal
	unitCost        decimal.Decimal
	storageLocation string
	emergency       bool
	actor           string

	guard guard.ConstructorGuard
}

// NewPostGoodsIssueCommand creates a command to post a goods issue. For
// emergency issues the storage location is ignored — emergency stock is
// fixed by policy.
func NewPostGoodsIssueCommand(
	orderNumber kernel.OrderNumber, materialRef string,
	quantity, unitCost decimal.Decimal, storageLocation string, emergency bool, actor string,
) (PostGoodsIssueCommand, error) {
	cmd := PostGoodsIssueCommand{
		storageLocation: storageLocation,
		emergency:       emergency,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setMaterialRef(materialRef),
		cmd.setQuantity(quantity),
		cmd.setUnitCost(unitCost),
		cmd.setActor(actor),
	); err != nil {
		return PostGoodsIssueCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PostGoodsIssueCommand) Validate() error {
	return c.guard.Validate(ErrPostGoodsIssueCommandIsNotConstructed)
}

// OrderNumber returns the order the issue is posted against.
func (c PostGoodsIssueCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// MaterialRef returns the issued material.
func (c PostGoodsIssueCommand) MaterialRef() string {
	return c.materialRef
}

// Quantity returns the issued quantity.
func (c PostGoodsIssueCommand) Quantity() decimal.Decimal {
	return c.quantity
}

// UnitCost returns the cost per issued unit.
func (c PostGoodsIssueCommand) UnitCost() decimal.Decimal {
	return c.unitCost
}

// StorageLocation returns the issuing storage location.
func (c PostGoodsIssueCommand) StorageLocation() string {
	return c.storageLocation
}

// IsEmergency reports whether the breakdown emergency-stock path is requested.
func (c PostGoodsIssueCommand) IsEmergency() bool {
	return c.emergency
}

// Actor returns who posts the issue.
func (c PostGoodsIssueCommand) Actor() string {
	return c.actor
}

func (c *PostGoodsIssueCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *PostGoodsIssueCommand) setMaterialRef(materialRef string) error {
	if materialRef == "" {
		return errs.NewValueIsRequiredError("material reference")
	}

	c.materialRef = materialRef
	return nil
}

func (c *PostGoodsIssueCommand) setQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}

func (c *PostGoodsIssueCommand) setUnitCost(unitCost decimal.Decimal) error {
	if unitCost.IsNegative() {
		return errs.NewValueIsInvalidError("unit cost")
	}

	c.unitCost = unitCost
	return nil
}

func (c *PostGoodsIssueCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
