package commands

import (
	"context"
	"time"

	"maintenance/internal/core/domain/model/docflow"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/services"
	"maintenance/internal/core/ports"
)

// SettleOrderCommandHandler settles completed orders: the cost engine
// fail-closed check produces the settlement document, the financial
// collaborator accepts it, and only then does the ledger entry commit. A
// rejected posting rolls everything back.
type SettleOrderCommandHandler struct {
	uowFactory UoWFactory
	locker     ports.OrderLocker
	costEngine services.CostEngine
	financial  ports.FinancialPostings
}

// NewSettleOrderCommandHandler creates a handler for order settlement.
func NewSettleOrderCommandHandler(
	uowFactory UoWFactory, locker ports.OrderLocker,
	costEngine services.CostEngine, financial ports.FinancialPostings,
) SettleOrderCommandHandler {
	return SettleOrderCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		costEngine: costEngine,
		financial:  financial,
	}
}

// Handle processes the settlement command.
func (h *SettleOrderCommandHandler) Handle(ctx context.Context, cmd SettleOrderCommand) error {
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

	aggregate, err := uow.OrderRepository().GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	now := time.Now()
	settlement, err := h.costEngine.Settle(aggregate, cmd.Actor(), now)
	if err != nil {
		return err
	}

	if err = h.financial.Post(ctx, settlement); err != nil {
		return err
	}

	entry, err := docflow.NewEntry(
		kernel.NewUUID(), aggregate.OrderNumber(), docflow.DocSettlement,
		settlement.ID.String(), cmd.Actor(), settlement.Total.String(), now)
	if err != nil {
		return err
	}
	if _, err = uow.DocumentFlowRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
