package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"maintenance/internal/core/application/usecases/queries"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/core/domain/services"
	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByNumber(
	ctx context.Context, orderNumber kernel.OrderNumber,
) (*order.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(
	ctx context.Context, status order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) NextSequence(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockPermitRegistry struct{ mock.Mock }

func (m *MockPermitRegistry) Permits(
	ctx context.Context, orderNumber kernel.OrderNumber,
) ([]services.PermitFact, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.PermitFact), args.Error(1)
}

type MockMaterialsAvailability struct{ mock.Mock }

func (m *MockMaterialsAvailability) Check(
	ctx context.Context, materialRef string,
) (services.Availability, error) {
	args := m.Called(ctx, materialRef)
	return args.Get(0).(services.Availability), args.Error(1)
}

type MockTechnicianDirectory struct{ mock.Mock }

func (m *MockTechnicianDirectory) IsActive(ctx context.Context, technicianID string) (bool, error) {
	args := m.Called(ctx, technicianID)
	return args.Bool(0), args.Error(1)
}

func plannedOrderWithTechnician(t *testing.T, technicianID string) *order.Order {
	t.Helper()

	orderNumber, err := kernel.NewGeneralOrderNumber(7)
	require.NoError(t, err)
	equipment, err := kernel.NewEquipmentRef("PUMP-100")
	require.NoError(t, err)

	o, err := order.NewOrder(
		orderNumber, order.TypeGeneral, order.PriorityNormal, equipment, "", "planner", time.Now())
	require.NoError(t, err)

	operation, err := order.NewOperation(kernel.NewUUID(), "MECH", "replace bearing", decimal.NewFromInt(4))
	require.NoError(t, err)
	require.NoError(t, o.AddOperation(operation))
	require.NoError(t, o.AssignTechnician(operation.ID(), technicianID))
	require.NoError(t, o.ApplyTransition(order.Planned, time.Now()))

	return o
}

func collaboratorsWith(
	permits *MockPermitRegistry, materials *MockMaterialsAvailability, technicians *MockTechnicianDirectory,
) ports.Collaborators {
	return ports.Collaborators{
		Materials:   materials,
		Permits:     permits,
		Technicians: technicians,
	}
}

func TestGetReadinessChecklistQueryHandler_ReleaseReady(t *testing.T) {
	ctx := context.Background()
	o := plannedOrderWithTechnician(t, "tech-1")

	repo := new(MockOrderRepository)
	repo.On("GetByNumber", ctx, o.OrderNumber()).Return(o, nil).Once()

	permits := new(MockPermitRegistry)
	permits.On("Permits", ctx, o.OrderNumber()).
		Return([]services.PermitFact{{Kind: "hot_work", Approved: true}}, nil).Once()
	materials := new(MockMaterialsAvailability)
	technicians := new(MockTechnicianDirectory)
	technicians.On("IsActive", ctx, "tech-1").Return(true, nil).Once()

	handler := queries.NewGetReadinessChecklistQueryHandler(
		repo, collaboratorsWith(permits, materials, technicians))

	query, err := queries.NewGetReadinessChecklistQuery(o.OrderNumber(), order.Released)
	require.NoError(t, err)

	resp, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.True(t, resp.TransitionValid)
	assert.True(t, resp.Allowed)
	assert.Empty(t, resp.BlockingReasons)
	assert.Equal(t, order.Planned, resp.CurrentStatus)
	assert.NotEmpty(t, resp.Checklist)
	repo.AssertExpectations(t)
	permits.AssertExpectations(t)
	technicians.AssertExpectations(t)
}

func TestGetReadinessChecklistQueryHandler_ReleaseBlockedByPermit(t *testing.T) {
	ctx := context.Background()
	o := plannedOrderWithTechnician(t, "tech-1")

	repo := new(MockOrderRepository)
	repo.On("GetByNumber", ctx, o.OrderNumber()).Return(o, nil).Once()

	permits := new(MockPermitRegistry)
	permits.On("Permits", ctx, o.OrderNumber()).
		Return([]services.PermitFact{{Kind: "confined_space", Approved: false}}, nil).Once()
	materials := new(MockMaterialsAvailability)
	technicians := new(MockTechnicianDirectory)
	technicians.On("IsActive", ctx, "tech-1").Return(true, nil).Once()

	handler := queries.NewGetReadinessChecklistQueryHandler(
		repo, collaboratorsWith(permits, materials, technicians))

	query, err := queries.NewGetReadinessChecklistQuery(o.OrderNumber(), order.Released)
	require.NoError(t, err)

	resp, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.True(t, resp.TransitionValid)
	assert.False(t, resp.Allowed)
	assert.NotEmpty(t, resp.BlockingReasons)

	var unsatisfied []string
	for _, item := range resp.Checklist {
		if !item.Satisfied {
			unsatisfied = append(unsatisfied, item.Label)
		}
	}
	assert.NotEmpty(t, unsatisfied)
}

func TestGetReadinessChecklistQueryHandler_InvalidTransitionReported(t *testing.T) {
	ctx := context.Background()
	o := plannedOrderWithTechnician(t, "tech-1")

	repo := new(MockOrderRepository)
	repo.On("GetByNumber", ctx, o.OrderNumber()).Return(o, nil).Once()

	handler := queries.NewGetReadinessChecklistQueryHandler(
		repo, collaboratorsWith(new(MockPermitRegistry), new(MockMaterialsAvailability), new(MockTechnicianDirectory)))

	// Planned -> Confirmed is not in the transition table. The query still
	// answers instead of erroring so clients can render the checklist.
	query, err := queries.NewGetReadinessChecklistQuery(o.OrderNumber(), order.Confirmed)
	require.NoError(t, err)

	resp, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.False(t, resp.TransitionValid)
	assert.False(t, resp.Allowed)
}

func TestGetReadinessChecklistQueryHandler_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	orderNumber, err := kernel.NewGeneralOrderNumber(404)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("GetByNumber", ctx, orderNumber).
		Return(nil, errs.NewObjectNotFoundError("order", orderNumber.String())).Once()

	handler := queries.NewGetReadinessChecklistQueryHandler(
		repo, collaboratorsWith(new(MockPermitRegistry), new(MockMaterialsAvailability), new(MockTechnicianDirectory)))

	query, err := queries.NewGetReadinessChecklistQuery(orderNumber, order.Released)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)
	require.Error(t, err)
}

func TestGetReadinessChecklistQueryHandler_CollaboratorDown(t *testing.T) {
	ctx := context.Background()
	o := plannedOrderWithTechnician(t, "tech-1")

	repo := new(MockOrderRepository)
	repo.On("GetByNumber", ctx, o.OrderNumber()).Return(o, nil).Once()

	permits := new(MockPermitRegistry)
	permits.On("Permits", ctx, o.OrderNumber()).
		Return(nil, errors.New("permit system timeout")).Once()

	handler := queries.NewGetReadinessChecklistQueryHandler(
		repo, collaboratorsWith(permits, new(MockMaterialsAvailability), new(MockTechnicianDirectory)))

	query, err := queries.NewGetReadinessChecklistQuery(o.OrderNumber(), order.Released)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrCollaboratorUnavailable)
}
