package commands

import (
	"context"
	"time"

	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/core/domain/services"
	"maintenance/internal/core/ports"
)

// TransitionOrderCommandHandler handles workflow transition requests. The
// whole check-then-commit sequence runs under the per-order lock, so the
// state the readiness checker evaluated is the state the commit persists.
//
// Transition to Planned additionally computes the cost estimate; transition
// prerequisites for Released are evaluated against freshly gathered
// collaborator facts, optionally under an authorized override.
type TransitionOrderCommandHandler struct {
	uowFactory     UoWFactory
	locker         ports.OrderLocker
	collaborators  ports.Collaborators
	overridePolicy ports.OverridePolicy
	machine        services.TransitionService
	costEngine     services.CostEngine
	observers      []ports.TransitionObserver
}

// NewTransitionOrderCommandHandler creates a handler for workflow transitions.
func NewTransitionOrderCommandHandler(
	uowFactory UoWFactory, locker ports.OrderLocker, collaborators ports.Collaborators,
	overridePolicy ports.OverridePolicy, costEngine services.CostEngine,
	observers ...ports.TransitionObserver,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory:     uowFactory,
		locker:         locker,
		collaborators:  collaborators,
		overridePolicy: overridePolicy,
		machine:        services.NewTransitionService(),
		costEngine:     costEngine,
		observers:      observers,
	}
}

// Handle processes the transition command. Observers are notified after the
// commit; their failures cannot undo a committed transition.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	release, err := h.locker.Acquire(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}
	defer release()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	if cmd.Target() == order.Planned {
		if err = h.costEngine.Estimate(aggregate); err != nil {
			return err
		}
	}

	// The override is authorized before the facts are gathered: a grant may
	// have to cover an outage of the very collaborator it bypasses.
	override, err := h.authorizeOverride(ctx, cmd)
	if err != nil {
		return err
	}

	facts, err := h.gatherFacts(ctx, aggregate, cmd.Target(), override)
	if err != nil {
		return err
	}

	entry, err := h.machine.Execute(aggregate, cmd.Target(), cmd.Actor(), facts, override, time.Now())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if _, err = uow.DocumentFlowRepository().Append(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, observer := range h.observers {
		observer.OnTransition(ctx, aggregate, entry)
	}

	return nil
}

// gatherFacts collects collaborator facts only for targets whose
// prerequisites use them. Everything else evaluates against order state
// alone.
func (h *TransitionOrderCommandHandler) gatherFacts(
	ctx context.Context, aggregate *order.Order, target order.Status,
	override *services.OverrideGrant,
) (services.Facts, error) {
	if target != order.Released {
		return services.Facts{}, nil
	}
	return h.collaborators.GatherReleaseFacts(ctx, aggregate, override)
}

func (h *TransitionOrderCommandHandler) authorizeOverride(
	ctx context.Context, cmd TransitionOrderCommand,
) (*services.OverrideGrant, error) {
	if !cmd.HasOverride() {
		return nil, nil
	}
	return h.overridePolicy.Authorize(ctx, cmd.Actor(), cmd.OverrideReason())
}
