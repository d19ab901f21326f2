package sapmock

import (
	"context"
	"sync"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/services"
)

// PermitRegistry answers permit lookups from a seeded table. Orders without
// seeded permits require none — the common case for routine maintenance.
type PermitRegistry struct {
	mu      sync.RWMutex
	permits map[string][]services.PermitFact
}

// NewPermitRegistry creates an empty permit registry.
func NewPermitRegistry() *PermitRegistry {
	return &PermitRegistry{
		permits: make(map[string][]services.PermitFact),
	}
}

// RequirePermit seeds one required permit for an order.
func (r *PermitRegistry) RequirePermit(orderNumber kernel.OrderNumber, kind string, approved bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := orderNumber.String()
	r.permits[key] = append(r.permits[key], services.PermitFact{Kind: kind, Approved: approved})
}

// ApprovePermit marks a seeded permit as approved.
func (r *PermitRegistry) ApprovePermit(orderNumber kernel.OrderNumber, kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	facts := r.permits[orderNumber.String()]
	for i := range facts {
		if facts[i].Kind == kind {
			facts[i].Approved = true
		}
	}
}

// Permits returns the seeded permit facts for one order.
func (r *PermitRegistry) Permits(
	_ context.Context, orderNumber kernel.OrderNumber,
) ([]services.PermitFact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	facts := r.permits[orderNumber.String()]
	out := make([]services.PermitFact, len(facts))
	copy(out, facts)
	return out, nil
}
