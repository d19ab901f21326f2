package cmd

import (
	"fmt"
	"log/slog"

	"maintenance/internal/adapters/out/cache"
	"maintenance/internal/adapters/out/logging"
	"maintenance/internal/adapters/out/memlock"
	"maintenance/internal/adapters/out/postgres"
	"maintenance/internal/adapters/out/postgres/orderrepo"
	"maintenance/internal/adapters/out/redis"
	"maintenance/internal/adapters/out/sapmock"
	"maintenance/internal/core/application/usecases/commands"
	"maintenance/internal/core/application/usecases/queries"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/services"
	"maintenance/internal/core/ports"
	"maintenance/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into handlers. It holds the singletons of
// the application: the unit-of-work factory, the per-order locker, the plant
// collaborators, and the cost engine.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	locker         ports.OrderLocker
	collaborators  ports.Collaborators
	overridePolicy ports.OverridePolicy
	financial      ports.FinancialPostings
	costEngine     services.CostEngine
	laborRate      decimal.Decimal

	transitionObservers []ports.TransitionObserver
	costObservers       []ports.CostObserver

	logger *slog.Logger
}

// NewCompositionRoot builds the object graph. A nil redisClient selects the
// in-process locker.
func NewCompositionRoot(
	config Config, gormDB *gorm.DB, redisClient goredis.UniversalClient, logger *slog.Logger,
) (*CompositionRoot, error) {
	laborRate, err := decimal.NewFromString(config.LaborRate)
	if err != nil {
		return nil, fmt.Errorf("invalid labor rate %q: %w", config.LaborRate, err)
	}
	costEngine, err := services.NewCostEngine(laborRate)
	if err != nil {
		return nil, err
	}

	var locker ports.OrderLocker = memlock.NewOrderLocker()
	if redisClient != nil {
		locker = redis.NewOrderLocker(redisClient, redis.DefaultLockTTL)
	}

	collaborators := ports.Collaborators{
		Materials:   cache.NewMaterialsCache(sapmock.NewMaterialsAvailability(), config.MaterialsCacheTTL),
		Permits:     sapmock.NewPermitRegistry(),
		Technicians: cache.NewTechniciansCache(sapmock.NewTechnicianDirectory(config.Technicians...), config.TechniciansCacheTTL),
	}

	return &CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		locker:         locker,
		collaborators:  collaborators,
		overridePolicy: sapmock.NewSupervisorOverridePolicy(config.Supervisors...),
		financial:      sapmock.NewFinancialPostings(),
		costEngine:     costEngine,
		laborRate:      laborRate,
		transitionObservers: []ports.TransitionObserver{
			logging.NewTransitionObserver(logger),
		},
		costObservers: []ports.CostObserver{
			logging.NewCostObserver(logger),
		},
		logger: logger,
	}, nil
}

func (c *CompositionRoot) newUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.newUoWFactory())
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(
		c.newUoWFactory(), c.locker, c.collaborators, c.overridePolicy, c.costEngine,
		c.transitionObservers...,
	)
}

func (c *CompositionRoot) CreateAddOperationCommandHandler() commands.AddOperationCommandHandler {
	return commands.NewAddOperationCommandHandler(c.newUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateAddComponentCommandHandler() commands.AddComponentCommandHandler {
	return commands.NewAddComponentCommandHandler(c.newUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateAssignTechnicianCommandHandler() commands.AssignTechnicianCommandHandler {
	return commands.NewAssignTechnicianCommandHandler(c.newUoWFactory(), c.locker, c.collaborators.Technicians)
}

func (c *CompositionRoot) CreateAttachPurchaseOrderCommandHandler() commands.AttachPurchaseOrderCommandHandler {
	return commands.NewAttachPurchaseOrderCommandHandler(c.newUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreatePostGoodsReceiptCommandHandler() commands.PostGoodsReceiptCommandHandler {
	return commands.NewPostGoodsReceiptCommandHandler(
		c.newUoWFactory(), c.locker, c.costEngine, c.costObservers...,
	)
}

func (c *CompositionRoot) CreatePostGoodsIssueCommandHandler() commands.PostGoodsIssueCommandHandler {
	return commands.NewPostGoodsIssueCommandHandler(
		c.newUoWFactory(), c.locker, c.costEngine, c.costObservers...,
	)
}

func (c *CompositionRoot) CreatePostConfirmationCommandHandler() commands.PostConfirmationCommandHandler {
	return commands.NewPostConfirmationCommandHandler(
		c.newUoWFactory(), c.locker, c.costEngine, c.costObservers...,
	)
}

func (c *CompositionRoot) CreateReportMalfunctionCommandHandler() commands.ReportMalfunctionCommandHandler {
	return commands.NewReportMalfunctionCommandHandler(c.newUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateSettleOrderCommandHandler() commands.SettleOrderCommandHandler {
	return commands.NewSettleOrderCommandHandler(c.newUoWFactory(), c.locker, c.costEngine, c.financial)
}

func (c *CompositionRoot) CreateGetReadinessChecklistQueryHandler() queries.GetReadinessChecklistQueryHandler {
	orderRepo := orderrepo.NewGormOrderRepository(c.gormDB, noTracking{})
	return queries.NewGetReadinessChecklistQueryHandler(orderRepo, c.collaborators)
}

func (c *CompositionRoot) CreateGetCostSummaryQueryHandler() queries.GetCostSummaryQueryHandler {
	return queries.NewGetCostSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDocumentFlowQueryHandler() queries.GetDocumentFlowQueryHandler {
	return queries.NewGetDocumentFlowQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	orderRepo := orderrepo.NewGormOrderRepository(c.gormDB, noTracking{})
	return jobs.NewJobManager(orderRepo, c.laborRate, c.logger)
}

// FuncUoWFactory adapts a closure to the commands.UoWFactory interface.
type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// noTracking is the tracker for read-only repository use outside a unit of
// work.
type noTracking struct{}

func (noTracking) TrackAggregate(kernel.OrderNumber, any) {}
