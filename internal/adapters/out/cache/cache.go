// Package cache provides TTL-cached decorators for the master-data
// collaborators. Material availability and workforce membership change
// slowly; caching them keeps release evaluations from hammering the plant
// systems. Permit facts are deliberately NOT cached — a just-approved permit
// must unblock the next release attempt immediately.
//
// A zero TTL disables caching: the decorator then delegates every call.
package cache

import (
	"context"
	"time"

	"maintenance/internal/core/domain/services"
	"maintenance/internal/core/ports"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const defaultCacheSize = 1024

// MaterialsCache decorates a MaterialsAvailability with an expiring LRU.
type MaterialsCache struct {
	inner ports.MaterialsAvailability
	lru   *expirable.LRU[string, services.Availability]
}

// NewMaterialsCache creates a caching decorator. A non-positive ttl returns
// a pass-through decorator.
func NewMaterialsCache(inner ports.MaterialsAvailability, ttl time.Duration) *MaterialsCache {
	c := &MaterialsCache{inner: inner}
	if ttl > 0 {
		c.lru = expirable.NewLRU[string, services.Availability](defaultCacheSize, nil, ttl)
	}
	return c
}

// Check returns the cached availability or asks the inner collaborator.
// Errors are never cached.
func (c *MaterialsCache) Check(ctx context.Context, materialRef string) (services.Availability, error) {
	if c.lru != nil {
		if availability, ok := c.lru.Get(materialRef); ok {
			return availability, nil
		}
	}

	availability, err := c.inner.Check(ctx, materialRef)
	if err != nil {
		return services.AvailabilityUnknown, err
	}

	if c.lru != nil {
		c.lru.Add(materialRef, availability)
	}
	return availability, nil
}

// TechniciansCache decorates a TechnicianDirectory with an expiring LRU.
type TechniciansCache struct {
	inner ports.TechnicianDirectory
	lru   *expirable.LRU[string, bool]
}

// NewTechniciansCache creates a caching decorator. A non-positive ttl
// returns a pass-through decorator.
func NewTechniciansCache(inner ports.TechnicianDirectory, ttl time.Duration) *TechniciansCache {
	c := &TechniciansCache{inner: inner}
	if ttl > 0 {
		c.lru = expirable.NewLRU[string, bool](defaultCacheSize, nil, ttl)
	}
	return c
}

// IsActive returns the cached membership or asks the inner collaborator.
// Errors are never cached.
func (c *TechniciansCache) IsActive(ctx context.Context, technicianID string) (bool, error) {
	if c.lru != nil {
		if active, ok := c.lru.Get(technicianID); ok {
			return active, nil
		}
	}

	active, err := c.inner.IsActive(ctx, technicianID)
	if err != nil {
		return false, err
	}

	if c.lru != nil {
		c.lru.Add(technicianID, active)
	}
	return active, nil
}
