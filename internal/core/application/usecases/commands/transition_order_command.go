package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
)

// TransitionOrderCommand represents a request to move a maintenance order to
// the next workflow status. An optional override reason asks for a release
// past unsatisfied permit/material prerequisites; the override policy
// decides whether the actor may do that.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber    kernel.OrderNumber
	target         order.Status
	actor          string
	overrideReason string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to request a workflow
// transition. The override reason may be empty; when set, it is only
// meaningful for transitions to Released.
func NewTransitionOrderCommand(
	orderNumber kernel.OrderNumber, target order.Status, actor, overrideReason string,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		overrideReason: overrideReason,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setTarget(target),
		cmd.setActor(actor),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderNumber returns the order to transition.
func (c TransitionOrderCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// Target returns the requested status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// Actor returns who requests the transition.
func (c TransitionOrderCommand) Actor() string {
	return c.actor
}

// OverrideReason returns the override justification, or "".
func (c TransitionOrderCommand) OverrideReason() string {
	return c.overrideReason
}

// HasOverride reports whether an override was requested.
func (c TransitionOrderCommand) HasOverride() bool {
	return c.overrideReason != ""
}

func (c *TransitionOrderCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *TransitionOrderCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
