package ports

import (
	"context"
	"errors"
	"fmt"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/core/domain/services"
)

// ErrCollaboratorUnavailable is returned when an external plant system
// cannot be reached or answers with an error. Transitions that depend on the
// answer fail closed.
var ErrCollaboratorUnavailable = errors.New("external collaborator is unavailable")

// CollaboratorFailure wraps a collaborator error with
// ErrCollaboratorUnavailable unless it already is one.
func CollaboratorFailure(collaborator string, err error) error {
	if errors.Is(err, ErrCollaboratorUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrCollaboratorUnavailable, collaborator, err)
}

// MaterialsAvailability is the materials-management collaborator: it answers
// the stock situation of a material.
type MaterialsAvailability interface {
	// Check returns the availability of one material.
	Check(ctx context.Context, materialRef string) (services.Availability, error)
}

// PermitRegistry is the permit-system collaborator: it knows which work
// permits an order requires and which of them are approved.
type PermitRegistry interface {
	// Permits returns the permit facts for one order: every required permit
	// kind with its current approval state.
	Permits(ctx context.Context, orderNumber kernel.OrderNumber) ([]services.PermitFact, error)
}

// TechnicianDirectory is the workforce collaborator: it verifies that a
// technician is an active member of the workforce.
type TechnicianDirectory interface {
	// IsActive reports whether the technician may be assigned work.
	IsActive(ctx context.Context, technicianID string) (bool, error)
}

// FinancialPostings is the financial-accounting collaborator settlement
// documents are posted to.
type FinancialPostings interface {
	// Post submits a settlement document. An error means the settlement did
	// not happen and the command must fail.
	Post(ctx context.Context, settlement *services.SettlementDocument) error
}

// Collaborators bundles the plant systems a readiness evaluation needs.
// Handlers gather a Facts snapshot through it before entering the state
// machine; the domain itself never talks to collaborators.
type Collaborators struct {
	Materials   MaterialsAvailability
	Permits     PermitRegistry
	Technicians TechnicianDirectory
}

// GatherReleaseFacts collects the external facts for a release decision:
// permit approvals, availability of every critical component, and
// verification of every assigned technician. Any collaborator failure
// surfaces as ErrCollaboratorUnavailable and the release fails closed —
// unless an authorized grant bypasses the check the failed collaborator
// serves. A permit-registry outage under PermitsBypass yields no permit
// facts; a materials outage under MaterialsBypass leaves the component's
// availability unknown, which the checker then marks as bypassed. The
// technician lookup has no degraded path: its outage always fails the
// release.
//
// Breakdown orders skip the permit and material lookups entirely — their
// release rule doesn't use them, so those collaborators being down must not
// block the fast path.
func (c Collaborators) GatherReleaseFacts(
	ctx context.Context, o *order.Order, grant *services.OverrideGrant,
) (services.Facts, error) {
	facts := services.Facts{}

	if !o.IsBreakdown() {
		permits, err := c.Permits.Permits(ctx, o.OrderNumber())
		switch {
		case err != nil && grant != nil && grant.PermitsBypass:
			// the grant waives permits, the registry being down is tolerable
		case err != nil:
			return services.Facts{}, CollaboratorFailure("permit registry", err)
		default:
			facts.Permits = permits
		}

		critical := o.CriticalComponents()
		if len(critical) > 0 {
			facts.MaterialAvailability = make(map[string]services.Availability, len(critical))
			for _, component := range critical {
				availability, cerr := c.Materials.Check(ctx, component.MaterialRef())
				if cerr != nil {
					if grant != nil && grant.MaterialsBypass {
						continue
					}
					return services.Facts{}, CollaboratorFailure("materials availability", cerr)
				}
				facts.MaterialAvailability[component.MaterialRef()] = availability
			}
		}
	}

	facts.TechnicianVerified = true
	technicians := o.AssignedTechnicians()
	if len(technicians) == 0 {
		facts.TechnicianVerified = false
		return facts, nil
	}
	for _, technicianID := range technicians {
		active, err := c.Technicians.IsActive(ctx, technicianID)
		if err != nil {
			return services.Facts{}, CollaboratorFailure("technician directory", err)
		}
		if !active {
			facts.TechnicianVerified = false
		}
	}

	return facts, nil
}
