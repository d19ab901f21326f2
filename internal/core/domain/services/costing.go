package services

import (
	"errors"
	"time"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrCostEngineIsNotConstructed is returned when using an improperly initialized CostEngine.
	ErrCostEngineIsNotConstructed = errors.New("CostEngine must be created via NewCostEngine constructor")

	// ErrEstimateNotAllowed is returned when estimation is requested after the
	// scope is locked.
	ErrEstimateNotAllowed = errors.New("cost estimation is only allowed in Created or Planned status")

	// ErrSettlementNotAllowed is the fail-closed settlement guard: settlement
	// requires a technically completed order with a computed cost summary.
	ErrSettlementNotAllowed = errors.New("settlement requires a technically completed order with a computed cost summary")
)

// SettlementDocument is the posting handed to the financial collaborator
// when an order is settled.
type SettlementDocument struct {
	ID          kernel.UUID
	OrderNumber kernel.OrderNumber
	Material    decimal.Decimal
	Labor       decimal.Decimal
	External    decimal.Decimal
	Total       decimal.Decimal
	Variance    decimal.Decimal
	SettledAt   time.Time
	Actor       string
}

// CostEngine maintains the cost view of maintenance orders. Estimation runs
// while the scope is still editable; actuals accumulate incrementally as
// transactional documents post, delegating the per-document idempotency to
// the order's cost summary; settlement fails closed.
//
// All money is decimal. The engine never touches float64.
type CostEngine struct {
	// laborRate is the hourly rate applied to planned and confirmed hours
	laborRate decimal.Decimal
}

// NewCostEngine creates a cost engine with the given hourly labor rate.
func NewCostEngine(laborRate decimal.Decimal) (CostEngine, error) {
	if laborRate.LessThanOrEqual(decimal.Zero) {
		return CostEngine{}, errs.NewValueIsInvalidError("labor rate")
	}
	return CostEngine{laborRate: laborRate}, nil
}

// LaborRate returns the hourly labor rate.
func (e CostEngine) LaborRate() decimal.Decimal {
	return e.laborRate
}

// Estimate computes the estimated cost of the order from its current scope:
// material from component estimates, labor from planned hours at the labor
// rate, external from service-procuring PO values. Re-planning recomputes
// the whole estimate; estimation is rejected once the scope is locked.
func (e CostEngine) Estimate(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Status() != order.Created && o.Status() != order.Planned {
		return ErrEstimateNotAllowed
	}

	material := decimal.Zero
	for _, component := range o.Components() {
		material = material.Add(component.EstimatedCost())
	}

	labor := decimal.Zero
	for _, operation := range o.Operations() {
		labor = labor.Add(operation.PlannedHours().Mul(e.laborRate))
	}

	external := decimal.Zero
	for _, po := range o.PurchaseOrders() {
		if po.POType() == order.POTypeService || po.POType() == order.POTypeCombined {
			external = external.Add(po.TotalValue())
		}
	}

	return o.CostSummary().ApplyEstimate(material, labor, external)
}

// AccumulateGoodsIssue adds a goods issue's total cost to actual material
// cost. Reprocessing the same movement is a no-op and returns applied=false.
func (e CostEngine) AccumulateGoodsIssue(o *order.Order, m *order.GoodsMovement) (bool, error) {
	if err := errors.Join(o.Validate(), m.Validate()); err != nil {
		return false, err
	}
	if m.Direction() != order.MovementIssue {
		return false, errs.NewValueIsInvalidError("movement direction")
	}
	return o.CostSummary().AddActual(order.ElementMaterial, m.TotalCost(), m.ID().String())
}

// AccumulateGoodsReceipt adds a service receipt's cost to actual external
// cost. Material receipts do not change actuals — material cost is based on
// issues — so they return applied=false without error.
func (e CostEngine) AccumulateGoodsReceipt(o *order.Order, m *order.GoodsMovement) (bool, error) {
	if err := errors.Join(o.Validate(), m.Validate()); err != nil {
		return false, err
	}
	if m.Direction() != order.MovementReceipt {
		return false, errs.NewValueIsInvalidError("movement direction")
	}

	po := o.FindPurchaseOrder(m.PONumber())
	if po == nil || po.POType() == order.POTypeMaterial {
		return false, nil
	}
	return o.CostSummary().AddActual(order.ElementExternal, m.TotalCost(), m.ID().String())
}

// AccumulateConfirmation adds a confirmation's hours at the labor rate to
// actual labor cost, or to external cost for externally performed work.
func (e CostEngine) AccumulateConfirmation(o *order.Order, c *order.Confirmation) (bool, error) {
	if err := errors.Join(o.Validate(), c.Validate()); err != nil {
		return false, err
	}

	element := order.ElementLabor
	if c.IsExternal() {
		element = order.ElementExternal
	}
	return o.CostSummary().AddActual(element, c.ActualHours().Mul(e.laborRate), c.ID().String())
}

// Settle re-checks the settlement preconditions and produces the settlement
// document for the financial collaborator. It fails closed: anything short
// of a technically completed order with a computed summary is rejected.
func (e CostEngine) Settle(o *order.Order, actor string, now time.Time) (*SettlementDocument, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status() != order.Teco || !o.CostSummary().IsComputed() {
		return nil, ErrSettlementNotAllowed
	}
	if actor == "" {
		return nil, errs.NewValueIsRequiredError("actor")
	}

	summary := o.CostSummary()
	return &SettlementDocument{
		ID:          kernel.NewUUID(),
		OrderNumber: o.OrderNumber(),
		Material:    summary.Actual(order.ElementMaterial),
		Labor:       summary.Actual(order.ElementLabor),
		External:    summary.Actual(order.ElementExternal),
		Total:       summary.TotalActual(),
		Variance:    summary.TotalVariance(),
		SettledAt:   now,
		Actor:       actor,
	}, nil
}
