package docflow

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"
)

// ErrEntryIsNotConstructed is returned when using an improperly initialized Entry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// DocumentType classifies what kind of document a ledger entry records.
type DocumentType string

const (
	// DocOrderCreated records the creation of the order itself.
	DocOrderCreated DocumentType = "order_created"
	// DocStatusChange records a workflow transition; every successful
	// transition writes exactly one of these.
	DocStatusChange DocumentType = "status_change"
	// DocPurchaseOrder records the attachment of a purchase order.
	DocPurchaseOrder DocumentType = "purchase_order"
	// DocGoodsReceipt records an inbound goods movement.
	DocGoodsReceipt DocumentType = "goods_receipt"
	// DocGoodsIssue records an outbound goods movement.
	DocGoodsIssue DocumentType = "goods_issue"
	// DocConfirmation records a work confirmation.
	DocConfirmation DocumentType = "confirmation"
	// DocMalfunctionReport records a filed malfunction report.
	DocMalfunctionReport DocumentType = "malfunction_report"
	// DocSettlement records a cost settlement posting.
	DocSettlement DocumentType = "settlement"
)

// Validate checks if the DocumentType value is one of the known kinds.
func (t DocumentType) Validate() error {
	switch t {
	case DocOrderCreated, DocStatusChange, DocPurchaseOrder, DocGoodsReceipt,
		DocGoodsIssue, DocConfirmation, DocMalfunctionReport, DocSettlement:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"document type", fmt.Errorf("%q is not a known document type", string(t)))
	}
}

// String returns the canonical name of the document type.
func (t DocumentType) String() string {
	return string(t)
}

// ParseDocumentType converts an external string to a DocumentType,
// case-normalizing at the boundary.
func ParseDocumentType(s string) (DocumentType, error) {
	t := DocumentType(strings.ToLower(strings.TrimSpace(s)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Entry is one immutable record of the document-flow ledger: which document
// was posted against which order, by whom and when. Entries are written in
// the same transaction as the change they record and are never edited or
// deleted afterwards.
type Entry struct {
	// id uniquely identifies the entry within the ledger
	id kernel.UUID
	// orderNumber is the order the entry belongs to
	orderNumber kernel.OrderNumber
	// documentType classifies the recorded document
	documentType DocumentType
	// documentNumber references the recorded document (movement id,
	// confirmation id, PO number, or "from -> to" for status changes)
	documentNumber string
	// occurredAt is when the recorded event happened
	occurredAt time.Time
	// actor is who triggered the recorded event
	actor string
	// detail is optional free-text context
	detail string
	// guard ensures the entry was properly constructed
	guard guard.ConstructorGuard
}

// NewEntry creates a ledger entry.
func NewEntry(
	id kernel.UUID, orderNumber kernel.OrderNumber, documentType DocumentType,
	documentNumber, actor, detail string, occurredAt time.Time,
) (*Entry, error) {
	e := &Entry{
		detail: detail,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setOrderNumber(orderNumber),
		e.setDocumentType(documentType),
		e.setDocumentNumber(documentNumber),
		e.setActor(actor),
		e.setOccurredAt(occurredAt),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// NewStatusChangeEntry creates the ledger entry for a workflow transition.
// The document number is the rendered "from -> to" pair.
func NewStatusChangeEntry(
	id kernel.UUID, orderNumber kernel.OrderNumber, from, to fmt.Stringer,
	actor, detail string, occurredAt time.Time,
) (*Entry, error) {
	return NewEntry(
		id, orderNumber, DocStatusChange,
		fmt.Sprintf("%s -> %s", from, to), actor, detail, occurredAt)
}

// RestoreEntry reconstructs a ledger entry from persistence.
func RestoreEntry(
	id kernel.UUID, orderNumber kernel.OrderNumber, documentType DocumentType,
	documentNumber, actor, detail string, occurredAt time.Time,
) (*Entry, error) {
	return NewEntry(id, orderNumber, documentType, documentNumber, actor, detail, occurredAt)
}

// Validate ensures the Entry was created through a constructor.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// OrderNumber returns the order the entry belongs to.
func (e *Entry) OrderNumber() kernel.OrderNumber {
	return e.orderNumber
}

// DocumentType returns the recorded document's classification.
func (e *Entry) DocumentType() DocumentType {
	return e.documentType
}

// DocumentNumber returns the recorded document's reference.
func (e *Entry) DocumentNumber() string {
	return e.documentNumber
}

// OccurredAt returns when the recorded event happened.
func (e *Entry) OccurredAt() time.Time {
	return e.occurredAt
}

// Actor returns who triggered the recorded event.
func (e *Entry) Actor() string {
	return e.actor
}

// Detail returns the optional free-text context.
func (e *Entry) Detail() string {
	return e.detail
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	e.orderNumber = orderNumber
	return nil
}

func (e *Entry) setDocumentType(documentType DocumentType) error {
	if err := documentType.Validate(); err != nil {
		return err
	}
	e.documentType = documentType
	return nil
}

func (e *Entry) setDocumentNumber(documentNumber string) error {
	if documentNumber == "" {
		return errs.NewValueIsRequiredError("document number")
	}
	e.documentNumber = documentNumber
	return nil
}

func (e *Entry) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	e.actor = actor
	return nil
}

func (e *Entry) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return errs.NewValueIsRequiredError("occurred at")
	}
	e.occurredAt = occurredAt
	return nil
}
