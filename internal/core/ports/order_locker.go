package ports

import (
	"context"

	"maintenance/internal/core/domain/model/kernel"
)

// ReleaseFunc releases a held order lock. Safe to call exactly once;
// typically deferred right after a successful Acquire.
type ReleaseFunc func()

// OrderLocker serializes mutations per order. Acquire returns ErrOrderLocked
// when the order is already being modified; the caller retries or reports
// the conflict, it never blocks indefinitely.
//
// Two implementations exist: an in-process mutex-per-key locker for
// single-instance deployments and tests, and a Redis-based locker for
// multi-instance deployments.
type OrderLocker interface {
	// Acquire takes the lock for one order. On success the returned
	// ReleaseFunc must be called to free it.
	Acquire(ctx context.Context, orderNumber kernel.OrderNumber) (ReleaseFunc, error)
}
