// Package memlock provides an in-process per-order lock for single-instance
// deployments and tests. Semantics mirror the Redis locker: Acquire either
// succeeds immediately or fails with ports.ErrOrderLocked, it never blocks.
package memlock

import (
	"context"
	"fmt"
	"sync"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/ports"
)

// OrderLocker implements ports.OrderLocker with one flag per order number.
type OrderLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewOrderLocker creates an in-process order locker.
func NewOrderLocker() *OrderLocker {
	return &OrderLocker{
		held: make(map[string]struct{}),
	}
}

// Acquire takes the lock for one order, or fails with ports.ErrOrderLocked
// when another request holds it.
func (l *OrderLocker) Acquire(_ context.Context, orderNumber kernel.OrderNumber) (ports.ReleaseFunc, error) {
	if err := orderNumber.Validate(); err != nil {
		return nil, err
	}

	key := orderNumber.String()

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, taken := l.held[key]; taken {
		return nil, fmt.Errorf("%w: %s", ports.ErrOrderLocked, key)
	}
	l.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			delete(l.held, key)
		})
	}, nil
}
