package commands_test

import (
	"context"

	"maintenance/internal/core/application/usecases/commands"
	"maintenance/internal/core/domain/model/docflow"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/core/domain/services"
	"maintenance/internal/core/ports"

	"github.com/stretchr/testify/mock"
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

func (m *MockOrderRepo) GetByNumber(ctx context.Context, orderNumber kernel.OrderNumber) (*order.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepo) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
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

type MockLedgerRepo struct{ mock.Mock }

func (m *MockLedgerRepo) Append(ctx context.Context, entry *docflow.Entry) (kernel.UUID, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

func (m *MockLedgerRepo) Query(
	ctx context.Context, orderNumber kernel.OrderNumber, documentType *docflow.DocumentType,
) ([]*docflow.Entry, error) {
	args := m.Called(ctx, orderNumber, documentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*docflow.Entry), args.Error(1)
}

type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUnitOfWork) DocumentFlowRepository() ports.DocumentFlowRepository {
	args := m.Called()
	return args.Get(0).(ports.DocumentFlowRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockLocker struct{ mock.Mock }

func (m *MockLocker) Acquire(ctx context.Context, orderNumber kernel.OrderNumber) (ports.ReleaseFunc, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.ReleaseFunc), args.Error(1)
}

type MockPermits struct{ mock.Mock }

func (m *MockPermits) Permits(ctx context.Context, orderNumber kernel.OrderNumber) ([]services.PermitFact, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.PermitFact), args.Error(1)
}

type MockMaterials struct{ mock.Mock }

func (m *MockMaterials) Check(ctx context.Context, materialRef string) (services.Availability, error) {
	args := m.Called(ctx, materialRef)
	return args.Get(0).(services.Availability), args.Error(1)
}

type MockTechnicians struct{ mock.Mock }

func (m *MockTechnicians) IsActive(ctx context.Context, technicianID string) (bool, error) {
	args := m.Called(ctx, technicianID)
	return args.Bool(0), args.Error(1)
}

type MockOverridePolicy struct{ mock.Mock }

func (m *MockOverridePolicy) Authorize(
	ctx context.Context, actor, reason string,
) (*services.OverrideGrant, error) {
	args := m.Called(ctx, actor, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.OverrideGrant), args.Error(1)
}

type MockFinancial struct{ mock.Mock }

func (m *MockFinancial) Post(ctx context.Context, settlement *services.SettlementDocument) error {
	args := m.Called(ctx, settlement)
	return args.Error(0)
}

type MockTransitionObserver struct{ mock.Mock }

func (m *MockTransitionObserver) OnTransition(ctx context.Context, aggregate *order.Order, entry *docflow.Entry) {
	m.Called(ctx, aggregate, entry)
}

type MockCostObserver struct{ mock.Mock }

func (m *MockCostObserver) OnCostUpdate(ctx context.Context, aggregate *order.Order, summary *order.CostSummary) {
	m.Called(ctx, aggregate, summary)
}

func noRelease() ports.ReleaseFunc {
	return func() {}
}
