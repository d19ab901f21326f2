package sapmock

import (
	"context"
	"fmt"
	"sync"

	"maintenance/internal/core/domain/services"
	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/errs"
)

// SupervisorOverridePolicy grants release overrides to a fixed set of
// supervisors. A grant waives permit and material prerequisites; the
// technician requirement is outside any grant by construction.
type SupervisorOverridePolicy struct {
	mu          sync.RWMutex
	supervisors map[string]struct{}
}

// NewSupervisorOverridePolicy creates a policy with the given supervisors.
func NewSupervisorOverridePolicy(supervisors ...string) *SupervisorOverridePolicy {
	set := make(map[string]struct{}, len(supervisors))
	for _, s := range supervisors {
		set[s] = struct{}{}
	}
	return &SupervisorOverridePolicy{supervisors: set}
}

// AddSupervisor grants override authority to one actor.
func (p *SupervisorOverridePolicy) AddSupervisor(actor string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.supervisors[actor] = struct{}{}
}

// Authorize validates an override request. The reason is mandatory — it ends
// up in the document-flow entry of the overridden transition.
func (p *SupervisorOverridePolicy) Authorize(
	_ context.Context, actor, reason string,
) (*services.OverrideGrant, error) {
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("override reason")
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if _, ok := p.supervisors[actor]; !ok {
		return nil, fmt.Errorf("%w: %s", ports.ErrUnauthorizedOverride, actor)
	}

	return &services.OverrideGrant{
		PermitsBypass:   true,
		MaterialsBypass: true,
		Reason:          reason,
		Actor:           actor,
	}, nil
}
