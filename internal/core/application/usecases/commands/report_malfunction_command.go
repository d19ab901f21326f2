package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"
)

var (
	ErrReportMalfunctionCommandIsNotConstructed = errors.New(
		"ReportMalfunctionCommand must be created via NewReportMalfunctionCommand constructor",
	)
)

// ReportMalfunctionCommand represents a request to file a malfunction report
// against a maintenance order. For breakdown orders the report is the
// precondition of technical completion.
type ReportMalfunctionCommand struct { //nolint:recvcheck //using for validation
	orderNumber      kernel.OrderNumber
	causeCode        string
	rootCause        string
	correctiveAction string
	actor            string

	guard guard.ConstructorGuard
}

// NewReportMalfunctionCommand creates a command to file a malfunction
// report. All analysis fields are required.
func NewReportMalfunctionCommand(
	orderNumber kernel.OrderNumber, causeCode, rootCause, correctiveAction, actor string,
) (ReportMalfunctionCommand, error) {
	cmd := ReportMalfunctionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setCauseCode(causeCode),
		cmd.setRootCause(rootCause),
		cmd.setCorrectiveAction(correctiveAction),
		cmd.setActor(actor),
	); err != nil {
		return ReportMalfunctionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportMalfunctionCommand) Validate() error {
	return c.guard.Validate(ErrReportMalfunctionCommandIsNotConstructed)
}

// OrderNumber returns the order the report is filed against.
func (c ReportMalfunctionCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// CauseCode returns the coded malfunction cause.
func (c ReportMalfunctionCommand) CauseCode() string {
	return c.causeCode
}

// RootCause returns the identified root cause.
func (c ReportMalfunctionCommand) RootCause() string {
	return c.rootCause
}

// CorrectiveAction returns the action taken.
func (c ReportMalfunctionCommand) CorrectiveAction() string {
	return c.correctiveAction
}

// Actor returns who files the report.
func (c ReportMalfunctionCommand) Actor() string {
	return c.actor
}

func (c *ReportMalfunctionCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *ReportMalfunctionCommand) setCauseCode(causeCode string) error {
	if causeCode == "" {
		return errs.NewValueIsRequiredError("cause code")
	}

	c.causeCode = causeCode
	return nil
}

func (c *ReportMalfunctionCommand) setRootCause(rootCause string) error {
	if rootCause == "" {
		return errs.NewValueIsRequiredError("root cause")
	}

	c.rootCause = rootCause
	return nil
}

func (c *ReportMalfunctionCommand) setCorrectiveAction(correctiveAction string) error {
	if correctiveAction == "" {
		return errs.NewValueIsRequiredError("corrective action")
	}

	c.correctiveAction = correctiveAction
	return nil
}

func (c *ReportMalfunctionCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
