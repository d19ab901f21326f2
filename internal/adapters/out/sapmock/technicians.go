package sapmock

import (
	"context"
	"sync"
)

// TechnicianDirectory answers workforce lookups from a seeded roster.
// Unknown technicians are inactive: staffing against the directory is the
// one release prerequisite no path bypasses, so the mock fails closed.
type TechnicianDirectory struct {
	mu     sync.RWMutex
	active map[string]bool
}

// NewTechnicianDirectory creates a directory with the given active roster.
func NewTechnicianDirectory(technicianIDs ...string) *TechnicianDirectory {
	active := make(map[string]bool, len(technicianIDs))
	for _, id := range technicianIDs {
		active[id] = true
	}
	return &TechnicianDirectory{active: active}
}

// Activate adds a technician to the active roster.
func (d *TechnicianDirectory) Activate(technicianID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.active[technicianID] = true
}

// Deactivate removes a technician from the active roster.
func (d *TechnicianDirectory) Deactivate(technicianID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.active[technicianID] = false
}

// IsActive reports whether the technician may be assigned work.
func (d *TechnicianDirectory) IsActive(_ context.Context, technicianID string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.active[technicianID], nil
}
