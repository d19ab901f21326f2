// Package ports defines the outbound contracts of the maintenance domain:
// repositories, the unit of work, the per-order locker, and the external
// plant-system collaborators. These interfaces establish contracts between
// the domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"
)

// ErrOrderLocked is returned when an order is being modified concurrently:
// either its lock is held by another request or a stale-version update was
// rejected. Callers may retry after backoff.
var ErrOrderLocked = errors.New("order is locked by a concurrent modification")

// OrderRepository defines the persistence contract for maintenance-order
// aggregates. The whole aggregate — children and cost summary included — is
// stored and loaded as a unit.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The update is a
	// compare-and-swap on the aggregate version: a stale version returns
	// ErrOrderLocked and persists nothing.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByNumber retrieves the complete order aggregate by its business
	// identifier. Returns errs.ObjectNotFoundError when no such order exists.
	GetByNumber(ctx context.Context, orderNumber kernel.OrderNumber) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// NextSequence reserves the next value of the shared order-number
	// sequence. Both MO- and BD- numbers draw from it, which keeps numbers
	// unique across namespaces.
	NextSequence(ctx context.Context) (int64, error)
}
