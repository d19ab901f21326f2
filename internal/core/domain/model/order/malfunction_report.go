package order

import (
	"errors"
	"time"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"
)

// ErrMalfunctionReportIsNotConstructed is returned when using an improperly initialized MalfunctionReport.
var ErrMalfunctionReportIsNotConstructed = errors.New(
	"MalfunctionReport must be created via NewMalfunctionReport constructor")

// MalfunctionReport documents the cause analysis of a breakdown: the cause
// code, the identified root cause, and the corrective action taken.
// Breakdown orders cannot reach technical completion without one.
type MalfunctionReport struct {
	// id uniquely identifies the report within the system
	id kernel.UUID
	// causeCode is the coded malfunction cause
	causeCode string
	// rootCause is the identified root cause
	rootCause string
	// correctiveAction is the action taken to resolve the malfunction
	correctiveAction string
	// reportedAt is the reporting timestamp
	reportedAt time.Time
	// actor is who filed the report
	actor string
	// guard ensures the report was properly constructed
	guard guard.ConstructorGuard
}

// NewMalfunctionReport creates a malfunction report. All analysis fields are
// required.
func NewMalfunctionReport(
	id kernel.UUID, causeCode, rootCause, correctiveAction, actor string, reportedAt time.Time,
) (*MalfunctionReport, error) {
	r := &MalfunctionReport{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		r.setID(id),
		r.setCauseCode(causeCode),
		r.setRootCause(rootCause),
		r.setCorrectiveAction(correctiveAction),
		r.setActor(actor),
		r.setReportedAt(reportedAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the MalfunctionReport was created through a constructor.
func (r *MalfunctionReport) Validate() error {
	if r == nil {
		return ErrMalfunctionReportIsNotConstructed
	}
	return r.guard.Validate(ErrMalfunctionReportIsNotConstructed)
}

// ID returns the report's unique identifier.
func (r *MalfunctionReport) ID() kernel.UUID {
	return r.id
}

// CauseCode returns the coded malfunction cause.
func (r *MalfunctionReport) CauseCode() string {
	return r.causeCode
}

// RootCause returns the identified root cause.
func (r *MalfunctionReport) RootCause() string {
	return r.rootCause
}

// CorrectiveAction returns the action taken.
func (r *MalfunctionReport) CorrectiveAction() string {
	return r.correctiveAction
}

// ReportedAt returns the reporting timestamp.
func (r *MalfunctionReport) ReportedAt() time.Time {
	return r.reportedAt
}

// Actor returns who filed the report.
func (r *MalfunctionReport) Actor() string {
	return r.actor
}

func (r *MalfunctionReport) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *MalfunctionReport) setCauseCode(causeCode string) error {
	if causeCode == "" {
		return errs.NewValueIsRequiredError("cause code")
	}
	r.causeCode = causeCode
	return nil
}

func (r *MalfunctionReport) setRootCause(rootCause string) error {
	if rootCause == "" {
		return errs.NewValueIsRequiredError("root cause")
	}
	r.rootCause = rootCause
	return nil
}

func (r *MalfunctionReport) setCorrectiveAction(correctiveAction string) error {
	if correctiveAction == "" {
		return errs.NewValueIsRequiredError("corrective action")
	}
	r.correctiveAction = correctiveAction
	return nil
}

func (r *MalfunctionReport) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	r.actor = actor
	return nil
}

func (r *MalfunctionReport) setReportedAt(reportedAt time.Time) error {
	if reportedAt.IsZero() {
		return errs.NewValueIsRequiredError("reported at")
	}
	r.reportedAt = reportedAt
	return nil
}
