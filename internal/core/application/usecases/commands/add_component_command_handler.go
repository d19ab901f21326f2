package commands

import (
	"context"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/core/ports"
)

// AddComponentCommandHandler adds material requirements to an order.
type AddComponentCommandHandler struct {
	uowFactory UoWFactory
	locker     ports.OrderLocker
}

// NewAddComponentCommandHandler creates a handler for component planning.
func NewAddComponentCommandHandler(uowFactory UoWFactory, locker ports.OrderLocker) AddComponentCommandHandler {
	return AddComponentCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle processes the add-component command and returns the new
// component's id.
func (h *AddComponentCommandHandler) Handle(
	ctx context.Context, cmd AddComponentCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	release, err := h.locker.Acquire(ctx, cmd.OrderNumber())
	if err != nil {
		return kernel.UUID{}, err
	}
	defer release()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return kernel.UUID{}, err
	}

	component, err := order.NewComponent(
		kernel.NewUUID(), cmd.MaterialRef(), cmd.Quantity(), cmd.Unit(), cmd.EstimatedCost())
	if err != nil {
		return kernel.UUID{}, err
	}
	if cmd.IsNonStock() {
		component.MarkNonStock()
	}
	if cmd.IsCritical() {
		component.MarkCritical()
	}
	if cmd.OperationID() != nil {
		if aggregate.FindOperation(*cmd.OperationID()) == nil {
			return kernel.UUID{}, order.ErrOperationNotFound
		}
		if err = component.LinkToOperation(*cmd.OperationID()); err != nil {
			return kernel.UUID{}, err
		}
	}

	if err = aggregate.AddComponent(component); err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return component.ID(), nil
}
