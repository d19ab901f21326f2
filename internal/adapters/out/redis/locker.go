// Package redis provides the Redis-backed per-order lock for multi-instance
// deployments. Locks are held with a TTL so a crashed holder cannot block an
// order forever.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/ports"

	"github.com/bsm/redislock"
	goredis "github.com/redis/go-redis/v9"
)

const lockKeyPrefix = "maintenance:order-lock:"

// DefaultLockTTL bounds how long a crashed holder can keep an order locked.
// Commands run well under it; the TTL is a safety net, not a deadline.
const DefaultLockTTL = 30 * time.Second

// OrderLocker implements ports.OrderLocker on top of redislock. A short
// linear-backoff retry absorbs sub-second contention between instances;
// anything longer surfaces as ports.ErrOrderLocked for the caller to handle.
type OrderLocker struct {
	locker *redislock.Client
	ttl    time.Duration
}

// NewOrderLocker creates a Redis-backed order locker. A non-positive ttl
// falls back to DefaultLockTTL.
func NewOrderLocker(client goredis.UniversalClient, ttl time.Duration) *OrderLocker {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return &OrderLocker{
		locker: redislock.New(client),
		ttl:    ttl,
	}
}

// Acquire takes the distributed lock for one order.
func (l *OrderLocker) Acquire(ctx context.Context, orderNumber kernel.OrderNumber) (ports.ReleaseFunc, error) {
	if err := orderNumber.Validate(); err != nil {
		return nil, err
	}

	lock, err := l.locker.Obtain(ctx, lockKeyPrefix+orderNumber.String(), l.ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(100*time.Millisecond), 5),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, fmt.Errorf("%w: %s", ports.ErrOrderLocked, orderNumber)
	}
	if err != nil {
		return nil, err
	}

	return func() {
		// Release with a fresh context: the request context may already be
		// canceled when the deferred release runs.
		_ = lock.Release(context.WithoutCancel(ctx))
	}, nil
}
