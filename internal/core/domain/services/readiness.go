package services

import (
	"errors"
	"fmt"
	"strings"

	"maintenance/internal/core/domain/model/order"
)

// ErrPrerequisitesNotMet is the sentinel for transitions whose prerequisites
// are not satisfied. The transition itself is valid; the order is not ready
// for it.
var ErrPrerequisitesNotMet = errors.New("transition prerequisites are not met")

// PrerequisitesNotMetError reports which prerequisites block a transition.
// Unwraps to ErrPrerequisitesNotMet.
type PrerequisitesNotMetError struct {
	Target  order.Status
	Reasons []string
}

func (e *PrerequisitesNotMetError) Error() string {
	return fmt.Sprintf("%s: %s blocked by: %s",
		ErrPrerequisitesNotMet, e.Target, strings.Join(e.Reasons, "; "))
}

func (e *PrerequisitesNotMetError) Unwrap() error {
	return ErrPrerequisitesNotMet
}

// Availability is the stock situation of one material, as reported by the
// materials collaborator.
type Availability int

const (
	// AvailabilityUnknown represents a material the collaborator was not asked about.
	AvailabilityUnknown Availability = iota
	// Available means the material is in stock.
	Available
	// OnOrder means the material is not in stock but a PO covers it.
	OnOrder
	// Unavailable means the material is neither in stock nor on order.
	Unavailable
)

// String returns the canonical lowercase name of the availability.
func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	case OnOrder:
		return "on_order"
	case Unavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// PermitFact is the approval state of one required permit.
type PermitFact struct {
	Kind     string
	Approved bool
}

// Facts is the snapshot of external state a readiness evaluation runs
// against. Command handlers gather it from the collaborator ports before
// calling Evaluate; the checker itself performs no I/O, so evaluating the
// same order against the same facts always yields the same decision.
type Facts struct {
	// Permits holds the approval state of every permit the work requires.
	Permits []PermitFact
	// MaterialAvailability maps material references to their stock situation.
	MaterialAvailability map[string]Availability
	// TechnicianVerified reports whether every assigned technician is an
	// active member of the workforce directory.
	TechnicianVerified bool
}

// OverrideGrant is a supervisor's authorization to release an order past
// unsatisfied permit or material prerequisites. The technician requirement
// is never part of a grant: no release path bypasses it.
type OverrideGrant struct {
	// PermitsBypass waives the permit prerequisites.
	PermitsBypass bool
	// MaterialsBypass waives the critical-component prerequisites.
	MaterialsBypass bool
	// Reason is the supervisor's justification, recorded in the ledger.
	Reason string
	// Actor is the authorizing supervisor.
	Actor string
}

// ChecklistItem is one prerequisite of a transition and whether the order
// currently satisfies it.
type ChecklistItem struct {
	Label     string
	Satisfied bool
	Detail    string
}

// Decision is the outcome of a readiness evaluation: whether the transition
// may proceed, what blocks it, and the full per-item checklist for display.
type Decision struct {
	Allowed         bool
	BlockingReasons []string
	Checklist       []ChecklistItem
}

// ReadinessChecker evaluates whether a maintenance order satisfies the
// prerequisites of a requested transition. It is a pure function over the
// order snapshot and a Facts value: no repository, no collaborator calls, no
// clock. The same checker backs both the state machine and the read-only
// readiness checklist, so what the checklist shows is exactly what the
// transition will enforce.
//
// Breakdown orders follow the accelerated release rule: permits and
// materials are skipped for Released, only the technician requirement
// remains. An OverrideGrant can waive permits and materials for general
// orders too — never the technician.
type ReadinessChecker struct{}

// NewReadinessChecker creates a new ReadinessChecker instance.
func NewReadinessChecker() ReadinessChecker {
	return ReadinessChecker{}
}

// Evaluate returns the readiness decision for moving o to target. It does
// not check the transition table itself — that is the state machine's job —
// and it never mutates the order.
func (c ReadinessChecker) Evaluate(
	o *order.Order, target order.Status, facts Facts, override *OverrideGrant,
) Decision {
	var checklist []ChecklistItem

	switch target {
	case order.Planned:
		checklist = c.planningChecklist(o)
	case order.Released:
		checklist = c.releaseChecklist(o, facts, override)
	case order.InProgress:
		checklist = append(checklist, ChecklistItem{
			Label:     "execution started",
			Satisfied: o.HasExecutionStarted(),
			Detail:    "at least one goods issue or confirmation posted",
		})
	case order.Confirmed:
		checklist = append(checklist, ChecklistItem{
			Label:     "all operations confirmed",
			Satisfied: o.AllOperationsConfirmed(),
		})
	case order.Teco:
		checklist = c.completionChecklist(o)
	}

	decision := Decision{Allowed: true, Checklist: checklist}
	for _, item := range checklist {
		if item.Satisfied {
			continue
		}
		decision.Allowed = false
		reason := item.Label
		if item.Detail != "" {
			reason = fmt.Sprintf("%s (%s)", item.Label, item.Detail)
		}
		decision.BlockingReasons = append(decision.BlockingReasons, reason)
	}
	return decision
}

func (c ReadinessChecker) planningChecklist(o *order.Order) []ChecklistItem {
	checklist := []ChecklistItem{
		{
			Label:     "scope defined",
			Satisfied: len(o.Operations()) > 0,
			Detail:    "at least one operation planned",
		},
	}

	// Breakdown orders plan skeletal: the seeded emergency operation is
	// enough, materials follow during execution.
	if !o.IsBreakdown() {
		checklist = append(checklist, ChecklistItem{
			Label:     "materials defined",
			Satisfied: len(o.Components()) > 0,
			Detail:    "at least one component planned",
		})
	}

	return checklist
}

func (c ReadinessChecker) releaseChecklist(
	o *order.Order, facts Facts, override *OverrideGrant,
) []ChecklistItem {
	var checklist []ChecklistItem

	// Breakdown release is technician-only; permits and materials are not
	// part of the checklist at all.
	if !o.IsBreakdown() {
		permitsBypassed := override != nil && override.PermitsBypass
		for _, permit := range facts.Permits {
			item := ChecklistItem{
				Label:     fmt.Sprintf("permit %s approved", permit.Kind),
				Satisfied: permit.Approved,
			}
			if !item.Satisfied && permitsBypassed {
				item.Satisfied = true
				item.Detail = "bypassed by override"
			}
			checklist = append(checklist, item)
		}

		materialsBypassed := override != nil && override.MaterialsBypass
		for _, component := range o.CriticalComponents() {
			availability := facts.MaterialAvailability[component.MaterialRef()]
			item := ChecklistItem{
				Label:     fmt.Sprintf("critical component %s", component.MaterialRef()),
				Satisfied: availability == Available || availability == OnOrder,
				Detail:    availability.String(),
			}
			if !item.Satisfied && materialsBypassed {
				item.Satisfied = true
				item.Detail = "bypassed by override"
			}
			checklist = append(checklist, item)
		}
	}

	// The technician requirement survives every path: breakdown fast track
	// and override releases included.
	checklist = append(checklist, ChecklistItem{
		Label:     "technician assigned",
		Satisfied: o.HasAssignedTechnician() && facts.TechnicianVerified,
		Detail:    "an active technician must be assigned to an operation",
	})

	return checklist
}

func (c ReadinessChecker) completionChecklist(o *order.Order) []ChecklistItem {
	open := o.OpenPurchaseOrders()
	checklist := []ChecklistItem{
		{
			Label:     "all purchase orders delivered",
			Satisfied: len(open) == 0,
			Detail:    fmt.Sprintf("%d open", len(open)),
		},
		// An order that completes without an estimate can never be settled:
		// estimation is rejected after release and settlement fails closed
		// without a computed summary.
		{
			Label:     "cost summary computed",
			Satisfied: o.CostSummary().IsComputed(),
			Detail:    "estimate must have been computed at least once",
		},
	}

	if o.IsBreakdown() {
		checklist = append(checklist, ChecklistItem{
			Label:     "malfunction report filed",
			Satisfied: o.HasMalfunctionReport(),
		})
	}

	return checklist
}
