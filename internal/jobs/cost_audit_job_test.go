package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepo struct{ mock.Mock }

func (m *MockOrderRepo) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepo) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepo) GetByNumber(
	ctx context.Context, orderNumber kernel.OrderNumber,
) (*order.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepo) GetAllInStatus(
	ctx context.Context, status order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepo) NextSequence(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestAuditJob(orders *MockOrderRepo) *CostAuditJob {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCostAuditJob(orders, decimal.NewFromInt(85), logger)
}

func releasedOrder(t *testing.T, sequence int64) *order.Order {
	t.Helper()

	orderNumber, err := kernel.NewGeneralOrderNumber(sequence)
	require.NoError(t, err)
	equipment, err := kernel.NewEquipmentRef("PUMP-100")
	require.NoError(t, err)

	o, err := order.NewOrder(
		orderNumber, order.TypeGeneral, order.PriorityNormal, equipment, "", "planner", time.Now())
	require.NoError(t, err)

	operation, err := order.NewOperation(kernel.NewUUID(), "MECH", "replace bearing", decimal.NewFromInt(4))
	require.NoError(t, err)
	require.NoError(t, o.AddOperation(operation))
	require.NoError(t, o.AssignTechnician(operation.ID(), "tech-1"))

	require.NoError(t, o.ApplyTransition(order.Planned, time.Now()))
	require.NoError(t, o.ApplyTransition(order.Released, time.Now()))
	return o
}

// issueGoods posts a goods issue and, when accumulate is set, books its cost
// the way the cost engine does on the document path.
func issueGoods(t *testing.T, o *order.Order, accumulate bool) {
	t.Helper()

	movement, err := order.NewGoodsIssue(
		kernel.NewUUID(), "BEARING-6204", "", decimal.NewFromInt(2), decimal.NewFromInt(120),
		"WH-01", "tech-1", time.Now())
	require.NoError(t, err)
	require.NoError(t, o.RecordGoodsIssue(movement))

	if accumulate {
		applied, err := o.CostSummary().AddActual(
			order.ElementMaterial, movement.TotalCost(), movement.ID().String())
		require.NoError(t, err)
		require.True(t, applied)
	}
}

func TestCostAuditJob_ReportDrift(t *testing.T) {
	t.Run("should stay silent when actuals match the documents", func(t *testing.T) {
		job := newTestAuditJob(new(MockOrderRepo))
		o := releasedOrder(t, 10)
		issueGoods(t, o, true)

		assert.False(t, job.reportDrift(context.Background(), o))
	})

	t.Run("should report a goods issue missing from the actuals", func(t *testing.T) {
		job := newTestAuditJob(new(MockOrderRepo))
		o := releasedOrder(t, 11)
		issueGoods(t, o, false)

		assert.True(t, job.reportDrift(context.Background(), o))
	})

	t.Run("should report unaccumulated confirmed hours", func(t *testing.T) {
		job := newTestAuditJob(new(MockOrderRepo))
		o := releasedOrder(t, 12)
		issueGoods(t, o, true)

		confirmation, err := order.NewConfirmation(
			kernel.NewUUID(), o.Operations()[0].ID(), decimal.NewFromInt(3), "done", "tech-1", time.Now())
		require.NoError(t, err)
		require.NoError(t, o.RecordConfirmation(confirmation))

		assert.True(t, job.reportDrift(context.Background(), o))
	})
}

func TestCostAuditJob_Audit(t *testing.T) {
	ctx := context.Background()

	t.Run("should scan every audited status and count drifted orders", func(t *testing.T) {
		consistent := releasedOrder(t, 20)
		issueGoods(t, consistent, true)
		drifting := releasedOrder(t, 21)
		issueGoods(t, drifting, false)

		orders := new(MockOrderRepo)
		orders.On("GetAllInStatus", ctx, order.Released).
			Return([]*order.Order{consistent, drifting}, nil).Once()
		orders.On("GetAllInStatus", ctx, order.InProgress).Return([]*order.Order{}, nil).Once()
		orders.On("GetAllInStatus", ctx, order.Confirmed).Return([]*order.Order{}, nil).Once()
		orders.On("GetAllInStatus", ctx, order.Teco).Return([]*order.Order{}, nil).Once()

		job := newTestAuditJob(orders)
		audited, drifted, err := job.audit(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, audited)
		assert.Equal(t, 1, drifted)
		orders.AssertExpectations(t)
	})

	t.Run("should surface repository failures", func(t *testing.T) {
		orders := new(MockOrderRepo)
		orders.On("GetAllInStatus", ctx, order.Released).
			Return(nil, errors.New("connection refused")).Once()

		job := newTestAuditJob(orders)
		err := job.Run(ctx)

		require.Error(t, err)
		orders.AssertExpectations(t)
	})
}
