package commands

import (
	"context"
	"time"

	"maintenance/internal/core/domain/model/docflow"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/core/domain/services"
	"maintenance/internal/core/ports"
)

// PostConfirmationCommandHandler posts work confirmations. The aggregate
// enforces goods-issue-before-confirmation for component-consuming
// operations; the cost engine turns confirmed hours into actual labor (or
// external) cost.
type PostConfirmationCommandHandler struct {
	uowFactory UoWFactory
	locker     ports.OrderLocker
	costEngine services.CostEngine
	observers  []ports.CostObserver
}

// NewPostConfirmationCommandHandler creates a handler for confirmation postings.
func NewPostConfirmationCommandHandler(
	uowFactory UoWFactory, locker ports.OrderLocker, costEngine services.CostEngine,
	observers ...ports.CostObserver,
) PostConfirmationCommandHandler {
	return PostConfirmationCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		costEngine: costEngine,
		observers:  observers,
	}
}

// Handle processes the confirmation command.
func (h *PostConfirmationCommandHandler) Handle(ctx context.Context, cmd PostConfirmationCommand) error {
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

	now := time.Now()
	confirmation, err := order.NewConfirmation(
		kernel.NewUUID(), cmd.OperationID(), cmd.ActualHours(), cmd.Detail(), cmd.Actor(), now)
	if err != nil {
		return err
	}
	if cmd.IsExternal() {
		confirmation.MarkExternal()
	}

	if err = aggregate.RecordConfirmation(confirmation); err != nil {
		return err
	}

	costUpdated, err := h.costEngine.AccumulateConfirmation(aggregate, confirmation)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := docflow.NewEntry(
		kernel.NewUUID(), aggregate.OrderNumber(), docflow.DocConfirmation,
		confirmation.ID().String(), cmd.Actor(), cmd.Detail(), now)
	if err != nil {
		return err
	}
	if _, err = uow.DocumentFlowRepository().Append(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if costUpdated {
		for _, observer := range h.observers {
			observer.OnCostUpdate(ctx, aggregate, aggregate.CostSummary())
		}
	}

	return nil
}
