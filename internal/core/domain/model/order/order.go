package order

import (
	"errors"
	"fmt"
	"time"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrScopeIsLocked is returned when operations are added or edited outside
	// the Created/Planned statuses.
	ErrScopeIsLocked = errors.New("operations can only be changed in Created or Planned status")

	// ErrPostingNotAllowed is returned when a transactional document is posted
	// in a status that does not accept it.
	ErrPostingNotAllowed = errors.New("document posting is not allowed in current status")

	// ErrGoodsIssueRequiredFirst is the sentinel for confirmations posted
	// against a component-consuming operation before the component's goods
	// issue.
	ErrGoodsIssueRequiredFirst = errors.New("goods issue must be posted before confirmation")

	// ErrNotificationIsRequired is returned when a breakdown order is created
	// without a fault notification reference.
	ErrNotificationIsRequired = errors.New("breakdown order requires a notification reference")

	// ErrNamespaceMismatch is returned when the order number prefix does not
	// match the order type.
	ErrNamespaceMismatch = errors.New("order number namespace does not match order type")

	// ErrOperationNotFound is returned when a referenced operation does not
	// belong to the order.
	ErrOperationNotFound = errors.New("operation not found on order")

	// ErrPurchaseOrderNotFound is returned when a referenced purchase order
	// does not belong to the order.
	ErrPurchaseOrderNotFound = errors.New("purchase order not found on order")
)

// GoodsIssueRequiredError reports which component blocks a confirmation.
// Unwraps to ErrGoodsIssueRequiredFirst.
type GoodsIssueRequiredError struct {
	MaterialRef string
}

func (e *GoodsIssueRequiredError) Error() string {
	return fmt.Sprintf("%s: component %s has no goods issue", ErrGoodsIssueRequiredFirst, e.MaterialRef)
}

func (e *GoodsIssueRequiredError) Unwrap() error {
	return ErrGoodsIssueRequiredFirst
}

// Order is the maintenance-order aggregate root. It owns the order's child
// documents and enforces every rule that spans them: the lifecycle state
// machine, scope locking, PO-Order linkage, goods-issue-before-confirmation,
// and the cost summary.
//
// Orders are mutated only through aggregate methods; callers load the
// aggregate, call methods, and persist the whole aggregate back under the
// per-order lock. Orders are never hard-deleted — TECO is a completion
// marker, not a removal.
type Order struct {
	// orderNumber is the immutable business identifier
	orderNumber kernel.OrderNumber
	// orderType distinguishes general from breakdown orders
	orderType Type
	// status is the current workflow state
	status Status
	// priority ranks urgency; urgent is forced for breakdown orders
	priority Priority
	// equipment references the maintained technical object
	equipment kernel.EquipmentRef
	// notificationID references the fault notification, breakdown only
	notificationID string
	// plannedStart and plannedEnd bound the planned execution window
	plannedStart *time.Time
	plannedEnd   *time.Time
	// actualStart is set when execution starts, actualEnd at TECO
	actualStart *time.Time
	actualEnd   *time.Time
	// createdBy and createdAt are immutable creation metadata
	createdBy string
	createdAt time.Time
	// version is the optimistic-lock version checked on update
	version int64

	operations         []*Operation
	components         []*Component
	purchaseOrders     []*PurchaseOrder
	goodsMovements     []*GoodsMovement
	confirmations      []*Confirmation
	malfunctionReports []*MalfunctionReport
	costSummary        *CostSummary

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a maintenance order in Created status with an empty cost
// summary. The order number namespace must match the order type, and
// breakdown orders must carry a notification reference (general orders must
// not).
func NewOrder(
	orderNumber kernel.OrderNumber, orderType Type, priority Priority,
	equipment kernel.EquipmentRef, notificationID, createdBy string, createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:      Created,
		costSummary: NewCostSummary(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setOrderNumber(orderNumber),
		o.setOrderType(orderType),
		o.setPriority(priority),
		o.setEquipment(equipment),
		o.setCreatedBy(createdBy),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if orderNumber.IsBreakdown() != (orderType == TypeBreakdown) {
		return nil, ErrNamespaceMismatch
	}

	switch orderType {
	case TypeBreakdown:
		if notificationID == "" {
			return nil, ErrNotificationIsRequired
		}
		o.notificationID = notificationID
	default:
		if notificationID != "" {
			return nil, errs.NewValueIsInvalidError("notification id is only valid for breakdown orders")
		}
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence, including
// its children, cost summary, and optimistic-lock version.
func RestoreOrder(
	orderNumber kernel.OrderNumber, orderType Type, status Status, priority Priority,
	equipment kernel.EquipmentRef, notificationID, createdBy string, createdAt time.Time,
	plannedStart, plannedEnd, actualStart, actualEnd *time.Time, version int64,
	operations []*Operation, components []*Component, purchaseOrders []*PurchaseOrder,
	goodsMovements []*GoodsMovement, confirmations []*Confirmation,
	malfunctionReports []*MalfunctionReport, costSummary *CostSummary,
) (*Order, error) {
	o, err := NewOrder(orderNumber, orderType, PriorityNormal, equipment, notificationID, createdBy, createdAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(status.Validate(), priority.Validate(), costSummary.Validate()); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidError("order version", fmt.Errorf("%d is negative", version))
	}

	o.status = status
	o.priority = priority
	o.plannedStart = plannedStart
	o.plannedEnd = plannedEnd
	o.actualStart = actualStart
	o.actualEnd = actualEnd
	o.version = version
	o.operations = operations
	o.components = components
	o.purchaseOrders = purchaseOrders
	o.goodsMovements = goodsMovements
	o.confirmations = confirmations
	o.malfunctionReports = malfunctionReports
	o.costSummary = costSummary

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their order numbers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.orderNumber.IsEqual(other.orderNumber)
}

// OrderNumber returns the immutable business identifier.
func (o *Order) OrderNumber() kernel.OrderNumber {
	return o.orderNumber
}

// OrderType returns the order classification.
func (o *Order) OrderType() Type {
	return o.orderType
}

// IsBreakdown reports whether the order follows the breakdown fast path.
func (o *Order) IsBreakdown() bool {
	return o.orderType == TypeBreakdown
}

// Status returns the current workflow state.
func (o *Order) Status() Status {
	return o.status
}

// Priority returns the order's priority.
func (o *Order) Priority() Priority {
	return o.priority
}

// Equipment returns the reference to the maintained technical object.
func (o *Order) Equipment() kernel.EquipmentRef {
	return o.equipment
}

// NotificationID returns the fault notification reference, "" for general orders.
func (o *Order) NotificationID() string {
	return o.notificationID
}

// PlannedStart returns the planned execution start, or nil.
func (o *Order) PlannedStart() *time.Time { return o.plannedStart }

// PlannedEnd returns the planned execution end, or nil.
func (o *Order) PlannedEnd() *time.Time { return o.plannedEnd }

// ActualStart returns the actual execution start, or nil before InProgress.
func (o *Order) ActualStart() *time.Time { return o.actualStart }

// ActualEnd returns the actual completion time, or nil before TECO.
func (o *Order) ActualEnd() *time.Time { return o.actualEnd }

// CreatedBy returns who created the order.
func (o *Order) CreatedBy() string { return o.createdBy }

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Version returns the optimistic-lock version used for compare-and-swap
// updates.
func (o *Order) Version() int64 { return o.version }

// Operations returns the planned operations.
func (o *Order) Operations() []*Operation { return o.operations }

// Components returns the material requirements.
func (o *Order) Components() []*Component { return o.components }

// PurchaseOrders returns the attached procurement documents.
func (o *Order) PurchaseOrders() []*PurchaseOrder { return o.purchaseOrders }

// GoodsMovements returns all posted goods receipts and issues.
func (o *Order) GoodsMovements() []*GoodsMovement { return o.goodsMovements }

// Confirmations returns all posted confirmations.
func (o *Order) Confirmations() []*Confirmation { return o.confirmations }

// MalfunctionReports returns all filed malfunction reports.
func (o *Order) MalfunctionReports() []*MalfunctionReport { return o.malfunctionReports }

// CostSummary returns the order's cost aggregate.
func (o *Order) CostSummary() *CostSummary { return o.costSummary }

// SetPlannedWindow records the planned execution window while the scope is
// still editable.
func (o *Order) SetPlannedWindow(start, end time.Time) error {
	if o.status != Created && o.status != Planned {
		return ErrScopeIsLocked
	}
	if end.Before(start) {
		return errs.NewValueIsInvalidError("planned window")
	}
	o.plannedStart = &start
	o.plannedEnd = &end
	return nil
}

// AddOperation adds a planned operation. Scope changes are only allowed in
// Created or Planned status.
func (o *Order) AddOperation(op *Operation) error {
	if err := op.Validate(); err != nil {
		return err
	}
	if o.status != Created && o.status != Planned {
		return ErrScopeIsLocked
	}
	o.operations = append(o.operations, op)
	return nil
}

// AssignTechnician assigns a technician to one operation. Assignment is
// allowed until technical completion — breakdown orders routinely staff
// right before release.
func (o *Order) AssignTechnician(operationID kernel.UUID, technicianID string) error {
	if o.status == Teco {
		return ErrScopeIsLocked
	}
	op := o.FindOperation(operationID)
	if op == nil {
		return ErrOperationNotFound
	}
	return op.AssignTechnician(technicianID)
}

// AddComponent adds a material requirement. Components may be added until
// the order is Confirmed; the breakdown emergency-issue path relies on this
// for auto-created components.
func (o *Order) AddComponent(c *Component) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if o.status == Confirmed || o.status == Teco {
		return ErrScopeIsLocked
	}
	o.components = append(o.components, c)
	return nil
}

// AttachPurchaseOrder fixes the PO's parent reference to this order and
// takes ownership. The reference never changes afterwards.
func (o *Order) AttachPurchaseOrder(po *PurchaseOrder) error {
	if err := po.Validate(); err != nil {
		return err
	}
	if o.status == Teco {
		return ErrPostingNotAllowed
	}
	if err := po.attachTo(o.orderNumber); err != nil {
		return err
	}
	o.purchaseOrders = append(o.purchaseOrders, po)
	return nil
}

// RecordGoodsReceipt posts an inbound movement. Receipts are accepted from
// Planned status on (materials arrive while work is being prepared) and
// advance the linked purchase order's delivery status.
func (o *Order) RecordGoodsReceipt(m *GoodsMovement, finalDelivery bool) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if m.Direction() != MovementReceipt {
		return errs.NewValueIsInvalidError("movement direction")
	}
	if o.status == Created || o.status == Teco {
		return ErrPostingNotAllowed
	}

	if m.PONumber() != "" {
		po := o.FindPurchaseOrder(m.PONumber())
		if po == nil {
			return ErrPurchaseOrderNotFound
		}
		if err := po.RecordDelivery(finalDelivery); err != nil {
			return err
		}
	}

	o.goodsMovements = append(o.goodsMovements, m)
	return nil
}

// RecordGoodsIssue posts an outbound movement. Issues require a released
// order: they are only accepted in Released or InProgress status.
func (o *Order) RecordGoodsIssue(m *GoodsMovement) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if m.Direction() != MovementIssue {
		return errs.NewValueIsInvalidError("movement direction")
	}
	if o.status != Released && o.status != InProgress {
		return ErrPostingNotAllowed
	}

	o.goodsMovements = append(o.goodsMovements, m)
	return nil
}

// RecordConfirmation posts a confirmation against one operation. The
// operation must belong to the order, and every component consumed by that
// operation must already have a goods issue — the
// goods-issue-before-confirmation invariant.
func (o *Order) RecordConfirmation(c *Confirmation) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if o.status != Released && o.status != InProgress {
		return ErrPostingNotAllowed
	}
	if o.FindOperation(c.OperationID()) == nil {
		return ErrOperationNotFound
	}

	for _, component := range o.components {
		opID := component.OperationID()
		if opID == nil || !opID.IsEqual(c.OperationID()) {
			continue
		}
		if !o.HasGoodsIssueFor(component.MaterialRef()) {
			return &GoodsIssueRequiredError{MaterialRef: component.MaterialRef()}
		}
	}

	o.confirmations = append(o.confirmations, c)
	return nil
}

// AddMalfunctionReport files a malfunction report. Reports may be filed in
// any status before technical completion.
func (o *Order) AddMalfunctionReport(r *MalfunctionReport) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if o.status == Teco {
		return ErrPostingNotAllowed
	}
	o.malfunctionReports = append(o.malfunctionReports, r)
	return nil
}

// ApplyTransition moves the order to the target status if the (current,
// target) pair is part of the transition table. Actual start is stamped on
// entering InProgress, actual end on entering TECO. Prerequisite checks are
// the readiness checker's responsibility; this method enforces only the
// table itself.
func (o *Order) ApplyTransition(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	switch newStatus {
	case InProgress:
		if o.actualStart == nil {
			o.actualStart = &now
		}
	case Teco:
		o.actualEnd = &now
	}
	return nil
}

// FindOperation returns the operation with the given id, or nil.
func (o *Order) FindOperation(id kernel.UUID) *Operation {
	for _, op := range o.operations {
		if op.ID().IsEqual(id) {
			return op
		}
	}
	return nil
}

// FindComponentByMaterial returns the first component for a material, or nil.
func (o *Order) FindComponentByMaterial(materialRef string) *Component {
	for _, c := range o.components {
		if c.MaterialRef() == materialRef {
			return c
		}
	}
	return nil
}

// FindPurchaseOrder returns the attached PO with the given number, or nil.
func (o *Order) FindPurchaseOrder(poNumber string) *PurchaseOrder {
	for _, po := range o.purchaseOrders {
		if po.PONumber() == poNumber {
			return po
		}
	}
	return nil
}

// HasGoodsIssueFor reports whether an issue was posted for a material.
func (o *Order) HasGoodsIssueFor(materialRef string) bool {
	for _, m := range o.goodsMovements {
		if m.Direction() == MovementIssue && m.MaterialRef() == materialRef {
			return true
		}
	}
	return false
}

// HasExecutionStarted reports whether a goods issue or confirmation has been
// posted — the precondition for the Released → InProgress transition.
func (o *Order) HasExecutionStarted() bool {
	if len(o.confirmations) > 0 {
		return true
	}
	for _, m := range o.goodsMovements {
		if m.Direction() == MovementIssue {
			return true
		}
	}
	return false
}

// AllOperationsConfirmed reports whether every planned operation carries at
// least one confirmation — the precondition for InProgress → Confirmed.
func (o *Order) AllOperationsConfirmed() bool {
	if len(o.operations) == 0 {
		return false
	}
	for _, op := range o.operations {
		if !o.hasConfirmationFor(op.ID()) {
			return false
		}
	}
	return true
}

func (o *Order) hasConfirmationFor(operationID kernel.UUID) bool {
	for _, c := range o.confirmations {
		if c.OperationID().IsEqual(operationID) {
			return true
		}
	}
	return false
}

// AssignedTechnicians returns the distinct technicians assigned across
// operations.
func (o *Order) AssignedTechnicians() []string {
	seen := make(map[string]struct{})
	technicians := make([]string, 0)
	for _, op := range o.operations {
		if !op.IsAssigned() {
			continue
		}
		if _, ok := seen[op.TechnicianID()]; ok {
			continue
		}
		seen[op.TechnicianID()] = struct{}{}
		technicians = append(technicians, op.TechnicianID())
	}
	return technicians
}

// HasAssignedTechnician reports whether at least one operation is staffed —
// the check that no release path, override included, ever bypasses.
func (o *Order) HasAssignedTechnician() bool {
	return len(o.AssignedTechnicians()) > 0
}

// CriticalComponents returns the components whose availability gates the
// release of general orders.
func (o *Order) CriticalComponents() []*Component {
	critical := make([]*Component, 0)
	for _, c := range o.components {
		if c.IsCritical() {
			critical = append(critical, c)
		}
	}
	return critical
}

// OpenPurchaseOrders returns the POs that still block technical completion.
func (o *Order) OpenPurchaseOrders() []*PurchaseOrder {
	open := make([]*PurchaseOrder, 0)
	for _, po := range o.purchaseOrders {
		if po.IsOpen() {
			open = append(open, po)
		}
	}
	return open
}

// HasMalfunctionReport reports whether at least one report is filed — the
// breakdown-only precondition for TECO.
func (o *Order) HasMalfunctionReport() bool {
	return len(o.malfunctionReports) > 0
}

func (o *Order) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setOrderType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setEquipment(equipment kernel.EquipmentRef) error {
	if err := equipment.Validate(); err != nil {
		return err
	}
	o.equipment = equipment
	return nil
}

func (o *Order) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return errs.NewValueIsRequiredError("created by")
	}
	o.createdBy = createdBy
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}
