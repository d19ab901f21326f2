package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new maintenance order.
// General orders start empty in Created status; breakdown orders are built
// from a fault notification with a seeded emergency operation and urgent
// priority.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    order.TypeGeneral, order.PriorityNormal, "PUMP-001", "", "", "planner")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderNumber, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderType          order.Type
	priority           order.Priority
	equipmentID        string
	functionalLocation string
	notificationID     string
	description        string
	createdBy          string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new maintenance
// order. Exactly one of equipmentID / functionalLocation must be set;
// notificationID is required for breakdown orders and forbidden otherwise.
func NewCreateOrderCommand(
	orderType order.Type, priority order.Priority,
	equipmentID, functionalLocation, notificationID, description, createdBy string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		equipmentID:        equipmentID,
		functionalLocation: functionalLocation,
		notificationID:     notificationID,
		description:        description,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderType(orderType),
		cmd.setPriority(priority),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderType returns the requested order classification.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// Priority returns the requested priority. Ignored for breakdown orders,
// which are always urgent.
func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

// EquipmentID returns the equipment id, or "" for functional-location orders.
func (c CreateOrderCommand) EquipmentID() string {
	return c.equipmentID
}

// FunctionalLocation returns the functional location, or "".
func (c CreateOrderCommand) FunctionalLocation() string {
	return c.functionalLocation
}

// NotificationID returns the fault notification reference, breakdown only.
func (c CreateOrderCommand) NotificationID() string {
	return c.notificationID
}

// Description returns the free-text work description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// CreatedBy returns who requests the order.
func (c CreateOrderCommand) CreatedBy() string {
	return c.createdBy
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateOrderCommand) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return errs.NewValueIsRequiredError("created by")
	}

	c.createdBy = createdBy
	return nil
}
