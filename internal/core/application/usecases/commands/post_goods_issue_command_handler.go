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

// PostGoodsIssueCommandHandler posts outbound goods movements and
// accumulates actual material cost. The emergency path delegates to the
// breakdown policy, which also auto-creates a component for the material if
// the order has none.
type PostGoodsIssueCommandHandler struct {
	uowFactory      UoWFactory
	locker          ports.OrderLocker
	costEngine      services.CostEngine
	breakdownPolicy services.BreakdownPolicy
	observers       []ports.CostObserver
}

// NewPostGoodsIssueCommandHandler creates a handler for goods issue postings.
func NewPostGoodsIssueCommandHandler(
	uowFactory UoWFactory, locker ports.OrderLocker, costEngine services.CostEngine,
	observers ...ports.CostObserver,
) PostGoodsIssueCommandHandler {
	return PostGoodsIssueCommandHandler{
		uowFactory:      uowFactory,
		locker:          locker,
		costEngine:      costEngine,
		breakdownPolicy: services.NewBreakdownPolicy(),
		observers:       observers,
	}
}

// Handle processes the goods issue command.
func (h *PostGoodsIssueCommandHandler) Handle(ctx context.Context, cmd PostGoodsIssueCommand) error {
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
	movement, err := h.postIssue(aggregate, cmd, now)
	if err != nil {
		return err
	}

	costUpdated, err := h.costEngine.AccumulateGoodsIssue(aggregate, movement)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := docflow.NewEntry(
		kernel.NewUUID(), aggregate.OrderNumber(), docflow.DocGoodsIssue,
		movement.ID().String(), cmd.Actor(), cmd.MaterialRef(), now)
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

func (h *PostGoodsIssueCommandHandler) postIssue(
	aggregate *order.Order, cmd PostGoodsIssueCommand, now time.Time,
) (*order.GoodsMovement, error) {
	if cmd.IsEmergency() {
		return h.breakdownPolicy.EmergencyIssue(
			aggregate, cmd.MaterialRef(), cmd.Quantity(), cmd.UnitCost(), cmd.Actor(), now)
	}

	movement, err := order.NewGoodsIssue(
		kernel.NewUUID(), cmd.MaterialRef(), "",
		cmd.Quantity(), cmd.UnitCost(), cmd.StorageLocation(), cmd.Actor(), now)
	if err != nil {
		return nil, err
	}
	if err = aggregate.RecordGoodsIssue(movement); err != nil {
		return nil, err
	}
	return movement, nil
}
