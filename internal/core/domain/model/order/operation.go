package order

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOperationIsNotConstructed is returned when using an improperly initialized Operation.
	ErrOperationIsNotConstructed = errors.New("Operation must be created via NewOperation constructor")
	// ErrPlannedHoursAreInvalid is returned when planned hours are not positive.
	ErrPlannedHoursAreInvalid = errors.New("planned hours must be greater than 0")
)

// Operation is a unit of work planned against a maintenance order: a work
// center, a description, planned hours, and — once staffing is decided — an
// assigned technician. Operations may only be added or edited while the
// parent order is in Created or Planned status.
type Operation struct {
	// id uniquely identifies the operation within the system
	id kernel.UUID
	// workCenter is the executing work center
	workCenter string
	// description describes the work to perform
	description string
	// plannedHours is the planned labor effort
	plannedHours decimal.Decimal
	// technicianID is the assigned technician, empty until assignment
	technicianID string
	// guard ensures the operation was properly constructed
	guard guard.ConstructorGuard
}

// NewOperation creates an unassigned operation. Work center and description
// are required, planned hours must be positive.
func NewOperation(id kernel.UUID, workCenter, description string, plannedHours decimal.Decimal) (*Operation, error) {
	op := &Operation{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		op.setID(id),
		op.setWorkCenter(workCenter),
		op.setDescription(description),
		op.setPlannedHours(plannedHours),
	); err != nil {
		return nil, err
	}

	return op, nil
}

// RestoreOperation reconstructs an operation from persistence, including an
// optional technician assignment.
func RestoreOperation(
	id kernel.UUID, workCenter, description string, plannedHours decimal.Decimal, technicianID string,
) (*Operation, error) {
	op, err := NewOperation(id, workCenter, description, plannedHours)
	if err != nil {
		return nil, err
	}
	op.technicianID = technicianID
	return op, nil
}

// Validate ensures the Operation was created through a constructor.
func (o *Operation) Validate() error {
	if o == nil {
		return ErrOperationIsNotConstructed
	}
	return o.guard.Validate(ErrOperationIsNotConstructed)
}

// ID returns the operation's unique identifier.
func (o *Operation) ID() kernel.UUID {
	return o.id
}

// WorkCenter returns the executing work center.
func (o *Operation) WorkCenter() string {
	return o.workCenter
}

// Description returns the work description.
func (o *Operation) Description() string {
	return o.description
}

// PlannedHours returns the planned labor effort.
func (o *Operation) PlannedHours() decimal.Decimal {
	return o.plannedHours
}

// TechnicianID returns the assigned technician, or "" when unassigned.
func (o *Operation) TechnicianID() string {
	return o.technicianID
}

// IsAssigned reports whether a technician has been assigned.
func (o *Operation) IsAssigned() bool {
	return o.technicianID != ""
}

// AssignTechnician assigns (or reassigns) a technician to the operation.
func (o *Operation) AssignTechnician(technicianID string) error {
	if technicianID == "" {
		return errs.NewValueIsRequiredError("technician id")
	}
	o.technicianID = technicianID
	return nil
}

func (o *Operation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Operation) setWorkCenter(workCenter string) error {
	if workCenter == "" {
		return errs.NewValueIsRequiredError("work center")
	}
	o.workCenter = workCenter
	return nil
}

func (o *Operation) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	o.description = description
	return nil
}

func (o *Operation) setPlannedHours(plannedHours decimal.Decimal) error {
	if plannedHours.LessThanOrEqual(decimal.Zero) {
		return ErrPlannedHoursAreInvalid
	}
	o.plannedHours = plannedHours
	return nil
}
