// Package queries contains read-only operations of the CQRS architecture.
// Queries never take the per-order lock and never mutate state: the
// readiness query evaluates against a snapshot, the cost and document-flow
// queries read directly from the database.
package queries

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/pkg/guard"
)

var (
	ErrGetReadinessChecklistQueryIsNotConstructed = errors.New(
		"GetReadinessChecklistQuery must be created via NewGetReadinessChecklistQuery constructor",
	)
)

// GetReadinessChecklistQuery retrieves the prerequisite checklist for a
// requested transition without executing it. Planners use it to see what
// still blocks a release before asking for one.
type GetReadinessChecklistQuery struct {
	orderNumber kernel.OrderNumber
	target      order.Status

	guard guard.ConstructorGuard
}

// NewGetReadinessChecklistQuery creates a query for the transition checklist.
func NewGetReadinessChecklistQuery(
	orderNumber kernel.OrderNumber, target order.Status,
) (GetReadinessChecklistQuery, error) {
	if err := errors.Join(orderNumber.Validate(), target.Validate()); err != nil {
		return GetReadinessChecklistQuery{}, err
	}

	return GetReadinessChecklistQuery{
		orderNumber: orderNumber,
		target:      target,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReadinessChecklistQuery) Validate() error {
	return q.guard.Validate(ErrGetReadinessChecklistQueryIsNotConstructed)
}

// OrderNumber returns the order to evaluate.
func (q GetReadinessChecklistQuery) OrderNumber() kernel.OrderNumber {
	return q.orderNumber
}

// Target returns the transition target to evaluate for.
func (q GetReadinessChecklistQuery) Target() order.Status {
	return q.target
}

// ChecklistItemResponse is one prerequisite and its current state.
type ChecklistItemResponse struct {
	Label     string
	Satisfied bool
	Detail    string
}

// GetReadinessChecklistQueryResponse is the evaluated checklist for one
// requested transition.
type GetReadinessChecklistQueryResponse struct {
	OrderNumber     kernel.OrderNumber
	CurrentStatus   order.Status
	Target          order.Status
	TransitionValid bool
	Allowed         bool
	BlockingReasons []string
	Checklist       []ChecklistItemResponse
}
