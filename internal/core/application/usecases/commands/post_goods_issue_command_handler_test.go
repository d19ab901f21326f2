package commands_test

import (
	"testing"
	"time"

	"maintenance/internal/core/application/usecases/commands"
	"maintenance/internal/core/domain/model/docflow"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func releasedOrder(t *testing.T) *order.Order {
	t.Helper()

	o := plannedOrderWithTechnician(t, "tech-1")
	require.NoError(t, o.ApplyTransition(order.Released, time.Now()))
	return o
}

func TestPostGoodsIssueCommandHandler_Handle_AccumulatesMaterialCost(t *testing.T) {
	ctx := t.Context()
	aggregate := releasedOrder(t)
	cmd, err := commands.NewPostGoodsIssueCommand(
		aggregate.OrderNumber(), "BEARING-6204",
		decimal.NewFromInt(2), decimal.NewFromInt(120), "WH-01", false, "tech-1")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepo)
	ledger := new(MockLedgerRepo)
	uow := new(MockUnitOfWork)
	factory := new(MockUoWFactory)
	locker := new(MockLocker)
	observer := new(MockCostObserver)

	locker.On("Acquire", ctx, aggregate.OrderNumber()).Return(noRelease(), nil).Once()
	observer.On("OnCostUpdate", ctx, aggregate, aggregate.CostSummary()).Once()

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByNumber", ctx, aggregate.OrderNumber()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("DocumentFlowRepository").Return(ledger).Once(),
		ledger.On("Append", ctx, mock.MatchedBy(func(e *docflow.Entry) bool {
			return e.DocumentType() == docflow.DocGoodsIssue && e.Detail() == "BEARING-6204"
		})).Return(kernel.NewUUID(), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewPostGoodsIssueCommandHandler(factory, locker, testCostEngine(t), observer)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, aggregate.GoodsMovements(), 1)
	assert.True(t, aggregate.CostSummary().Actual(order.ElementMaterial).Equal(decimal.NewFromInt(240)))
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	ledger.AssertExpectations(t)
	locker.AssertExpectations(t)
	observer.AssertExpectations(t)
}

func TestPostGoodsIssueCommandHandler_Handle_EmergencyRequiresBreakdown(t *testing.T) {
	ctx := t.Context()
	aggregate := releasedOrder(t)
	cmd, err := commands.NewPostGoodsIssueCommand(
		aggregate.OrderNumber(), "SEAL-KIT-9",
		decimal.NewFromInt(1), decimal.NewFromInt(50), "", true, "tech-1")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepo)
	uow := new(MockUnitOfWork)
	factory := new(MockUoWFactory)
	locker := new(MockLocker)

	locker.On("Acquire", ctx, aggregate.OrderNumber()).Return(noRelease(), nil).Once()

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByNumber", ctx, aggregate.OrderNumber()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewPostGoodsIssueCommandHandler(factory, locker, testCostEngine(t))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrEmergencyIssueNotAllowed)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestPostGoodsIssueCommandHandler_Handle_RejectedBeforeRelease(t *testing.T) {
	ctx := t.Context()
	aggregate := plannedOrderWithTechnician(t, "tech-1")
	cmd, err := commands.NewPostGoodsIssueCommand(
		aggregate.OrderNumber(), "BEARING-6204",
		decimal.NewFromInt(1), decimal.NewFromInt(120), "WH-01", false, "tech-1")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepo)
	uow := new(MockUnitOfWork)
	factory := new(MockUoWFactory)
	locker := new(MockLocker)

	locker.On("Acquire", ctx, aggregate.OrderNumber()).Return(noRelease(), nil).Once()

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByNumber", ctx, aggregate.OrderNumber()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewPostGoodsIssueCommandHandler(factory, locker, testCostEngine(t))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrPostingNotAllowed)
	assert.Empty(t, aggregate.GoodsMovements())
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}
