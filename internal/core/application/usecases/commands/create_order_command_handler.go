package commands

import (
	"context"
	"time"

	"maintenance/internal/core/domain/model/docflow"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Reserves the next order number from the shared sequence, builds the
// aggregate (general or breakdown path), and records the creation in the
// document flow ledger — all in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory      UoWFactory
	breakdownPolicy services.BreakdownPolicy
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:      uowFactory,
		breakdownPolicy: services.NewBreakdownPolicy(),
	}
}

// Handle processes the order creation command and returns the number of the
// created order. New orders need no per-order lock: nobody can address the
// order before its number exists.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateOrderCommand,
) (kernel.OrderNumber, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.OrderNumber{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.OrderNumber{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	sequence, err := orderRepo.NextSequence(ctx)
	if err != nil {
		return kernel.OrderNumber{}, err
	}

	now := time.Now()
	aggregate, err := h.buildOrder(cmd, sequence, now)
	if err != nil {
		return kernel.OrderNumber{}, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return kernel.OrderNumber{}, err
	}

	entry, err := docflow.NewEntry(
		kernel.NewUUID(), aggregate.OrderNumber(), docflow.DocOrderCreated,
		aggregate.OrderNumber().String(), cmd.CreatedBy(), cmd.Description(), now)
	if err != nil {
		return kernel.OrderNumber{}, err
	}
	if _, err = uow.DocumentFlowRepository().Append(ctx, entry); err != nil {
		return kernel.OrderNumber{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.OrderNumber{}, err
	}

	return aggregate.OrderNumber(), nil
}

func (h *CreateOrderCommandHandler) buildOrder(
	cmd CreateOrderCommand, sequence int64, now time.Time,
) (*order.Order, error) {
	if cmd.OrderType() == order.TypeBreakdown {
		return h.breakdownPolicy.CreateFromNotification(services.Notification{
			ID:                 cmd.NotificationID(),
			EquipmentID:        cmd.EquipmentID(),
			FunctionalLocation: cmd.FunctionalLocation(),
			Description:        cmd.Description(),
			ReportedBy:         cmd.CreatedBy(),
		}, sequence, now)
	}

	orderNumber, err := kernel.NewGeneralOrderNumber(sequence)
	if err != nil {
		return nil, err
	}
	equipment, err := kernel.RestoreEquipmentRef(cmd.EquipmentID(), cmd.FunctionalLocation())
	if err != nil {
		return nil, err
	}
	return order.NewOrder(
		orderNumber, order.TypeGeneral, cmd.Priority(), equipment, "", cmd.CreatedBy(), now)
}
