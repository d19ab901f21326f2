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

// PostGoodsReceiptCommandHandler posts inbound goods movements: it advances
// the referenced purchase order's delivery status, accumulates external
// actual cost for service receipts, and appends the ledger entry — all in
// one transaction under the per-order lock.
type PostGoodsReceiptCommandHandler struct {
	uowFactory UoWFactory
	locker     ports.OrderLocker
	costEngine services.CostEngine
	observers  []ports.CostObserver
}

// NewPostGoodsReceiptCommandHandler creates a handler for goods receipt postings.
func NewPostGoodsReceiptCommandHandler(
	uowFactory UoWFactory, locker ports.OrderLocker, costEngine services.CostEngine,
	observers ...ports.CostObserver,
) PostGoodsReceiptCommandHandler {
	return PostGoodsReceiptCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		costEngine: costEngine,
		observers:  observers,
	}
}

// Handle processes the goods receipt command.
func (h *PostGoodsReceiptCommandHandler) Handle(ctx context.Context, cmd PostGoodsReceiptCommand) error {
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
	movement, err := order.NewGoodsReceipt(
		kernel.NewUUID(), cmd.MaterialRef(), cmd.PONumber(),
		cmd.Quantity(), cmd.UnitCost(), cmd.StorageLocation(), cmd.Actor(), now)
	if err != nil {
		return err
	}

	if err = aggregate.RecordGoodsReceipt(movement, cmd.IsFinalDelivery()); err != nil {
		return err
	}

	costUpdated, err := h.costEngine.AccumulateGoodsReceipt(aggregate, movement)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := docflow.NewEntry(
		kernel.NewUUID(), aggregate.OrderNumber(), docflow.DocGoodsReceipt,
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
