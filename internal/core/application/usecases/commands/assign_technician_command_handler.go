package commands

import (
	"context"
	"fmt"

	"maintenance/internal/core/ports"
)

// AssignTechnicianCommandHandler staffs operations. The technician must be
// an active member of the workforce directory at assignment time; release
// re-verifies later, so a technician deactivated in between still blocks the
// release.
type AssignTechnicianCommandHandler struct {
	uowFactory  UoWFactory
	locker      ports.OrderLocker
	technicians ports.TechnicianDirectory
}

// NewAssignTechnicianCommandHandler creates a handler for technician assignment.
func NewAssignTechnicianCommandHandler(
	uowFactory UoWFactory, locker ports.OrderLocker, technicians ports.TechnicianDirectory,
) AssignTechnicianCommandHandler {
	return AssignTechnicianCommandHandler{
		uowFactory:  uowFactory,
		locker:      locker,
		technicians: technicians,
	}
}

// Handle processes the assign-technician command.
func (h *AssignTechnicianCommandHandler) Handle(ctx context.Context, cmd AssignTechnicianCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	active, err := h.technicians.IsActive(ctx, cmd.TechnicianID())
	if err != nil {
		return ports.CollaboratorFailure("technician directory", err)
	}
	if !active {
		return fmt.Errorf("technician %s is not active", cmd.TechnicianID())
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

	if err = aggregate.AssignTechnician(cmd.OperationID(), cmd.TechnicianID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
