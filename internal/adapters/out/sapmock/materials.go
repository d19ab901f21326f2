package sapmock

import (
	"context"
	"sync"

	"maintenance/internal/core/domain/services"
)

// MaterialsAvailability answers stock lookups from a seeded table.
// Materials never seeded report as available, which keeps development
// friction low; tests seed the statuses they need.
type MaterialsAvailability struct {
	mu    sync.RWMutex
	stock map[string]services.Availability
}

// NewMaterialsAvailability creates an empty materials table.
func NewMaterialsAvailability() *MaterialsAvailability {
	return &MaterialsAvailability{
		stock: make(map[string]services.Availability),
	}
}

// SetAvailability seeds the availability of one material.
func (m *MaterialsAvailability) SetAvailability(materialRef string, availability services.Availability) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stock[materialRef] = availability
}

// Check returns the seeded availability, or available for unknown materials.
func (m *MaterialsAvailability) Check(_ context.Context, materialRef string) (services.Availability, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if availability, ok := m.stock[materialRef]; ok {
		return availability, nil
	}
	return services.Available, nil
}
