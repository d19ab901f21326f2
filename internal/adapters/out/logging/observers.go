// Package logging provides slog-backed observer implementations. Observers
// run after commit; they only report, they never influence the outcome.
package logging

import (
	"context"
	"log/slog"

	"maintenance/internal/core/domain/model/docflow"
	"maintenance/internal/core/domain/model/order"
)

// TransitionObserver logs every committed workflow transition.
type TransitionObserver struct {
	logger *slog.Logger
}

// NewTransitionObserver creates a transition observer.
func NewTransitionObserver(logger *slog.Logger) *TransitionObserver {
	return &TransitionObserver{logger: logger.With("component", "transition_observer")}
}

// OnTransition logs the committed transition with its ledger entry.
func (o *TransitionObserver) OnTransition(ctx context.Context, aggregate *order.Order, entry *docflow.Entry) {
	o.logger.InfoContext(ctx, "Order transitioned",
		"order", aggregate.OrderNumber().String(),
		"status", aggregate.Status().String(),
		"document", entry.DocumentNumber(),
		"actor", entry.Actor(),
	)
}

// CostObserver logs every committed change to an order's cost summary.
type CostObserver struct {
	logger *slog.Logger
}

// NewCostObserver creates a cost observer.
func NewCostObserver(logger *slog.Logger) *CostObserver {
	return &CostObserver{logger: logger.With("component", "cost_observer")}
}

// OnCostUpdate logs the new actual totals of the order.
func (o *CostObserver) OnCostUpdate(ctx context.Context, aggregate *order.Order, summary *order.CostSummary) {
	o.logger.InfoContext(ctx, "Order costs updated",
		"order", aggregate.OrderNumber().String(),
		"actual_material", summary.Actual(order.ElementMaterial),
		"actual_labor", summary.Actual(order.ElementLabor),
		"actual_external", summary.Actual(order.ElementExternal),
		"actual_total", summary.TotalActual(),
	)
}
