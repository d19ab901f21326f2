package commands_test

import (
	"errors"
	"testing"

	"maintenance/internal/core/application/usecases/commands"
	"maintenance/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignTechnicianCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := createdOrderWithOperation(t)
	operationID := aggregate.Operations()[0].ID()
	cmd, err := commands.NewAssignTechnicianCommand(aggregate.OrderNumber(), operationID, "tech-1")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepo)
	uow := new(MockUnitOfWork)
	factory := new(MockUoWFactory)
	locker := new(MockLocker)
	technicians := new(MockTechnicians)

	technicians.On("IsActive", ctx, "tech-1").Return(true, nil).Once()
	locker.On("Acquire", ctx, aggregate.OrderNumber()).Return(noRelease(), nil).Once()

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByNumber", ctx, aggregate.OrderNumber()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAssignTechnicianCommandHandler(factory, locker, technicians)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, []string{"tech-1"}, aggregate.AssignedTechnicians())
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	technicians.AssertExpectations(t)
}

func TestAssignTechnicianCommandHandler_Handle_InactiveTechnician(t *testing.T) {
	ctx := t.Context()
	aggregate := createdOrderWithOperation(t)
	cmd, err := commands.NewAssignTechnicianCommand(
		aggregate.OrderNumber(), aggregate.Operations()[0].ID(), "stranger")
	require.NoError(t, err)

	factory := new(MockUoWFactory)
	locker := new(MockLocker)
	technicians := new(MockTechnicians)

	technicians.On("IsActive", ctx, "stranger").Return(false, nil).Once()

	handler := commands.NewAssignTechnicianCommandHandler(factory, locker, technicians)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not active")
	locker.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything)
	factory.AssertNotCalled(t, "Create")
	technicians.AssertExpectations(t)
}

func TestAssignTechnicianCommandHandler_Handle_DirectoryDown(t *testing.T) {
	ctx := t.Context()
	aggregate := createdOrderWithOperation(t)
	cmd, err := commands.NewAssignTechnicianCommand(
		aggregate.OrderNumber(), aggregate.Operations()[0].ID(), "tech-1")
	require.NoError(t, err)

	factory := new(MockUoWFactory)
	locker := new(MockLocker)
	technicians := new(MockTechnicians)

	technicians.On("IsActive", ctx, "tech-1").Return(false, errors.New("directory timeout")).Once()

	handler := commands.NewAssignTechnicianCommandHandler(factory, locker, technicians)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrCollaboratorUnavailable)
	technicians.AssertExpectations(t)
}
