package commands

import (
	"context"
	"time"

	"maintenance/internal/core/domain/model/docflow"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/core/ports"
)

// AttachPurchaseOrderCommandHandler creates purchase orders under a
// maintenance order and records the attachment in the ledger. The created PO
// is immediately marked as ordered.
type AttachPurchaseOrderCommandHandler struct {
	uowFactory UoWFactory
	locker     ports.OrderLocker
}

// NewAttachPurchaseOrderCommandHandler creates a handler for PO attachment.
func NewAttachPurchaseOrderCommandHandler(
	uowFactory UoWFactory, locker ports.OrderLocker,
) AttachPurchaseOrderCommandHandler {
	return AttachPurchaseOrderCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle processes the attach-purchase-order command.
func (h *AttachPurchaseOrderCommandHandler) Handle(ctx context.Context, cmd AttachPurchaseOrderCommand) error {
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

	po, err := order.NewPurchaseOrder(kernel.NewUUID(), cmd.PONumber(), cmd.POType(), cmd.TotalValue())
	if err != nil {
		return err
	}

	if err = aggregate.AttachPurchaseOrder(po); err != nil {
		return err
	}
	if err = po.MarkOrdered(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := docflow.NewEntry(
		kernel.NewUUID(), aggregate.OrderNumber(), docflow.DocPurchaseOrder,
		cmd.PONumber(), cmd.Actor(), cmd.POType().String(), time.Now())
	if err != nil {
		return err
	}
	if _, err = uow.DocumentFlowRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
