package services

import (
	"fmt"
	"time"

	"maintenance/internal/core/domain/model/docflow"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"
)

// TransitionService is the guarded state machine over maintenance orders.
// It combines the aggregate's transition table with the readiness checker:
// a transition succeeds only if the (current, requested) pair is enumerated
// AND every prerequisite for the target is satisfied against the supplied
// facts.
//
// Every successful transition yields exactly one document-flow entry that
// the caller must persist atomically with the order — the service mutates
// the aggregate in memory and hands back the entry, it never talks to a
// repository. Callers re-run Execute under the per-order lock so the
// evaluation and the commit see the same state.
type TransitionService struct {
	checker ReadinessChecker
}

// NewTransitionService creates a new TransitionService instance.
func NewTransitionService() TransitionService {
	return TransitionService{checker: NewReadinessChecker()}
}

// Execute moves the order to the target status. The facts snapshot must be
// gathered by the caller; the optional override can waive permit and
// material prerequisites for release, never the technician requirement.
//
// On success the order carries the new status and the returned ledger entry
// records the transition, including the override reason when one was used.
// On failure the order is unchanged and the error is either an
// *order.InvalidTransitionError or a *PrerequisitesNotMetError.
func (s TransitionService) Execute(
	o *order.Order, target order.Status, actor string,
	facts Facts, override *OverrideGrant, now time.Time,
) (*docflow.Entry, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	// Check the table first so an undefined pair is reported as an invalid
	// transition, not as missing prerequisites.
	if _, err := o.Status().TransitionTo(target); err != nil {
		return nil, err
	}

	decision := s.checker.Evaluate(o, target, facts, override)
	if !decision.Allowed {
		return nil, &PrerequisitesNotMetError{Target: target, Reasons: decision.BlockingReasons}
	}

	from := o.Status()
	if err := o.ApplyTransition(target, now); err != nil {
		return nil, err
	}

	detail := ""
	if override != nil && (override.PermitsBypass || override.MaterialsBypass) {
		detail = fmt.Sprintf("override by %s: %s", override.Actor, override.Reason)
	}

	return docflow.NewStatusChangeEntry(
		kernel.NewUUID(), o.OrderNumber(), from, target, actor, detail, now)
}

// Evaluate exposes the readiness decision without executing the transition.
// The read-only checklist endpoint is built on this.
func (s TransitionService) Evaluate(
	o *order.Order, target order.Status, facts Facts, override *OverrideGrant,
) Decision {
	return s.checker.Evaluate(o, target, facts, override)
}
