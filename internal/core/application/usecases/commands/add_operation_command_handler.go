package commands

import (
	"context"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/core/ports"
)

// AddOperationCommandHandler adds planned operations to an order. Scope
// changes don't touch the ledger; they are plain aggregate updates under the
// per-order lock.
type AddOperationCommandHandler struct {
	uowFactory UoWFactory
	locker     ports.OrderLocker
}

// NewAddOperationCommandHandler creates a handler for operation planning.
func NewAddOperationCommandHandler(uowFactory UoWFactory, locker ports.OrderLocker) AddOperationCommandHandler {
	return AddOperationCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle processes the add-operation command and returns the new
// operation's id.
func (h *AddOperationCommandHandler) Handle(
	ctx context.Context, cmd AddOperationCommand,
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

	operation, err := order.NewOperation(
		kernel.NewUUID(), cmd.WorkCenter(), cmd.Description(), cmd.PlannedHours())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = aggregate.AddOperation(operation); err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return operation.ID(), nil
}
