package commands

import (
	"context"
	"time"

	"maintenance/internal/core/domain/model/docflow"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/core/ports"
)

// ReportMalfunctionCommandHandler files malfunction reports and records them
// in the document flow ledger.
type ReportMalfunctionCommandHandler struct {
	uowFactory UoWFactory
	locker     ports.OrderLocker
}

// NewReportMalfunctionCommandHandler creates a handler for malfunction reports.
func NewReportMalfunctionCommandHandler(
	uowFactory UoWFactory, locker ports.OrderLocker,
) ReportMalfunctionCommandHandler {
	return ReportMalfunctionCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle processes the malfunction report command.
func (h *ReportMalfunctionCommandHandler) Handle(ctx context.Context, cmd ReportMalfunctionCommand) error {
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
	report, err := order.NewMalfunctionReport(
		kernel.NewUUID(), cmd.CauseCode(), cmd.RootCause(), cmd.CorrectiveAction(), cmd.Actor(), now)
	if err != nil {
		return err
	}

	if err = aggregate.AddMalfunctionReport(report); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := docflow.NewEntry(
		kernel.NewUUID(), aggregate.OrderNumber(), docflow.DocMalfunctionReport,
		report.ID().String(), cmd.Actor(), cmd.RootCause(), now)
	if err != nil {
		return err
	}
	if _, err = uow.DocumentFlowRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
