package order

import (
	"errors"
	"time"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrConfirmationIsNotConstructed is returned when using an improperly initialized Confirmation.
	ErrConfirmationIsNotConstructed = errors.New("Confirmation must be created via NewConfirmation constructor")
	// ErrActualHoursAreInvalid is returned when confirmed hours are not positive.
	ErrActualHoursAreInvalid = errors.New("actual hours must be greater than 0")
)

// Confirmation records work performed against one operation of a
// maintenance order: actual hours for internal work, or a detail text for
// externally performed work. Confirmations are immutable once recorded.
type Confirmation struct {
	// id uniquely identifies the confirmation within the system
	id kernel.UUID
	// operationID references the confirmed operation
	operationID kernel.UUID
	// actualHours is the confirmed labor effort
	actualHours decimal.Decimal
	// detail is free-text describing the work performed
	detail string
	// external marks work performed by an external provider
	external bool
	// postedAt is the posting timestamp
	postedAt time.Time
	// actor is who posted the confirmation
	actor string
	// guard ensures the confirmation was properly constructed
	guard guard.ConstructorGuard
}

// NewConfirmation creates a confirmation of internal work for an operation.
func NewConfirmation(
	id, operationID kernel.UUID, actualHours decimal.Decimal, detail, actor string, postedAt time.Time,
) (*Confirmation, error) {
	c := &Confirmation{
		detail: detail,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setOperationID(operationID),
		c.setActualHours(actualHours),
		c.setActor(actor),
		c.setPostedAt(postedAt),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreConfirmation reconstructs a confirmation from persistence.
func RestoreConfirmation(
	id, operationID kernel.UUID, actualHours decimal.Decimal, detail string,
	external bool, actor string, postedAt time.Time,
) (*Confirmation, error) {
	c, err := NewConfirmation(id, operationID, actualHours, detail, actor, postedAt)
	if err != nil {
		return nil, err
	}
	c.external = external
	return c, nil
}

// MarkExternal flags the confirmation as externally performed work.
func (c *Confirmation) MarkExternal() {
	c.external = true
}

// Validate ensures the Confirmation was created through a constructor.
func (c *Confirmation) Validate() error {
	if c == nil {
		return ErrConfirmationIsNotConstructed
	}
	return c.guard.Validate(ErrConfirmationIsNotConstructed)
}

// ID returns the confirmation's unique identifier.
func (c *Confirmation) ID() kernel.UUID {
	return c.id
}

// OperationID returns the confirmed operation's identifier.
func (c *Confirmation) OperationID() kernel.UUID {
	return c.operationID
}

// ActualHours returns the confirmed labor effort.
func (c *Confirmation) ActualHours() decimal.Decimal {
	return c.actualHours
}

// Detail returns the free-text work description.
func (c *Confirmation) Detail() string {
	return c.detail
}

// IsExternal reports whether the work was performed externally.
func (c *Confirmation) IsExternal() bool {
	return c.external
}

// PostedAt returns the posting timestamp.
func (c *Confirmation) PostedAt() time.Time {
	return c.postedAt
}

// Actor returns who posted the confirmation.
func (c *Confirmation) Actor() string {
	return c.actor
}

func (c *Confirmation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Confirmation) setOperationID(operationID kernel.UUID) error {
	if err := operationID.Validate(); err != nil {
		return err
	}
	c.operationID = operationID
	return nil
}

func (c *Confirmation) setActualHours(actualHours decimal.Decimal) error {
	if actualHours.LessThanOrEqual(decimal.Zero) {
		return ErrActualHoursAreInvalid
	}
	c.actualHours = actualHours
	return nil
}

func (c *Confirmation) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}

func (c *Confirmation) setPostedAt(postedAt time.Time) error {
	if postedAt.IsZero() {
		return errs.NewValueIsRequiredError("posted at")
	}
	c.postedAt = postedAt
	return nil
}
