package ports

import (
	"context"

	"maintenance/internal/core/domain/model/docflow"
	"maintenance/internal/core/domain/model/order"
)

// TransitionObserver is notified after a workflow transition has been
// committed. Observers run outside the transaction and outside the state
// machine; a failing observer never affects the transition.
type TransitionObserver interface {
	OnTransition(ctx context.Context, aggregate *order.Order, entry *docflow.Entry)
}

// CostObserver is notified after a committed change to an order's cost
// summary.
type CostObserver interface {
	OnCostUpdate(ctx context.Context, aggregate *order.Order, summary *order.CostSummary)
}
