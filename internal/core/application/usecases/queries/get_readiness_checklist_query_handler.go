package queries

import (
	"context"

	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/core/domain/services"
	"maintenance/internal/core/ports"
)

// GetReadinessChecklistQueryHandler evaluates the readiness checklist for a
// requested transition against a snapshot of the order and fresh
// collaborator facts. It never takes the per-order lock and never mutates
// anything: the authoritative evaluation is repeated inside the transition
// command.
type GetReadinessChecklistQueryHandler struct {
	orderRepo     ports.OrderRepository
	collaborators ports.Collaborators
	machine       services.TransitionService
}

// NewGetReadinessChecklistQueryHandler creates a handler for the checklist query.
func NewGetReadinessChecklistQueryHandler(
	orderRepo ports.OrderRepository, collaborators ports.Collaborators,
) GetReadinessChecklistQueryHandler {
	return GetReadinessChecklistQueryHandler{
		orderRepo:     orderRepo,
		collaborators: collaborators,
		machine:       services.NewTransitionService(),
	}
}

// Handle processes the checklist query.
func (h *GetReadinessChecklistQueryHandler) Handle(
	ctx context.Context, query GetReadinessChecklistQuery,
) (GetReadinessChecklistQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetReadinessChecklistQueryResponse{}, err
	}

	aggregate, err := h.orderRepo.GetByNumber(ctx, query.OrderNumber())
	if err != nil {
		return GetReadinessChecklistQueryResponse{}, err
	}

	facts := services.Facts{}
	if query.Target() == order.Released {
		facts, err = h.collaborators.GatherReleaseFacts(ctx, aggregate, nil)
		if err != nil {
			return GetReadinessChecklistQueryResponse{}, err
		}
	}

	_, transitionErr := aggregate.Status().TransitionTo(query.Target())
	decision := h.machine.Evaluate(aggregate, query.Target(), facts, nil)

	checklist := make([]ChecklistItemResponse, 0, len(decision.Checklist))
	for _, item := range decision.Checklist {
		checklist = append(checklist, ChecklistItemResponse{
			Label:     item.Label,
			Satisfied: item.Satisfied,
			Detail:    item.Detail,
		})
	}

	return GetReadinessChecklistQueryResponse{
		OrderNumber:     aggregate.OrderNumber(),
		CurrentStatus:   aggregate.Status(),
		Target:          query.Target(),
		TransitionValid: transitionErr == nil,
		Allowed:         transitionErr == nil && decision.Allowed,
		BlockingReasons: decision.BlockingReasons,
		Checklist:       checklist,
	}, nil
}
