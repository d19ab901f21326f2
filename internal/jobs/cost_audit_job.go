package jobs

import (
	"context"
	"log/slog"

	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/core/ports"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// auditedStatuses are the statuses in which transactional documents exist;
// before release an order carries no actuals that could drift.
var auditedStatuses = []order.Status{order.Released, order.InProgress, order.Confirmed, order.Teco}

// CostAuditJob periodically re-derives the actual cost split of every active
// order from its transactional documents and compares it with the stored
// summary. Actuals accumulate incrementally as documents post, so the two
// views must agree; any drift points at a missed or double-processed document
// and is logged for investigation. The job never repairs data.
type CostAuditJob struct {
	orders    ports.OrderRepository
	laborRate decimal.Decimal
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCostAuditJob creates the audit job. The labor rate must match the one
// the cost engine runs with, otherwise every confirmed order drifts.
func NewCostAuditJob(orders ports.OrderRepository, laborRate decimal.Decimal, logger *slog.Logger) *CostAuditJob {
	return &CostAuditJob{
		orders:    orders,
		laborRate: laborRate,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "cost_audit_job"),
	}
}

// Start schedules the audit to run hourly.
func (j *CostAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Cost audit run failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cost audit job started (running hourly)")
	return nil
}

// Stop stops the audit job.
func (j *CostAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cost audit job stopped")
}

// Run executes one audit pass over every order in an audited status.
func (j *CostAuditJob) Run(ctx context.Context) error {
	audited, drifted, err := j.audit(ctx)
	if err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "Cost audit run completed", "audited", audited, "drifted", drifted)
	return nil
}

func (j *CostAuditJob) audit(ctx context.Context) (audited, drifted int, err error) {
	for _, status := range auditedStatuses {
		aggregates, err := j.orders.GetAllInStatus(ctx, status)
		if err != nil {
			return audited, drifted, err
		}

		for _, aggregate := range aggregates {
			audited++
			if j.reportDrift(ctx, aggregate) {
				drifted++
			}
		}
	}
	return audited, drifted, nil
}

// deriveActuals recomputes the actual cost split from the order's documents:
// material from issued goods at movement cost, labor from internal confirmed
// hours at the labor rate, external from service-procuring receipts plus
// external confirmed hours at the labor rate.
func (j *CostAuditJob) deriveActuals(o *order.Order) (material, labor, external decimal.Decimal) {
	material, labor, external = decimal.Zero, decimal.Zero, decimal.Zero

	servicePOs := make(map[string]bool, len(o.PurchaseOrders()))
	for _, po := range o.PurchaseOrders() {
		if po.POType() == order.POTypeService || po.POType() == order.POTypeCombined {
			servicePOs[po.PONumber()] = true
		}
	}

	for _, m := range o.GoodsMovements() {
		switch {
		case m.Direction() == order.MovementIssue:
			material = material.Add(m.TotalCost())
		case m.Direction() == order.MovementReceipt && servicePOs[m.PONumber()]:
			external = external.Add(m.TotalCost())
		}
	}

	for _, c := range o.Confirmations() {
		if c.IsExternal() {
			external = external.Add(c.ActualHours().Mul(j.laborRate))
		} else {
			labor = labor.Add(c.ActualHours().Mul(j.laborRate))
		}
	}

	return material, labor, external
}

func (j *CostAuditJob) reportDrift(ctx context.Context, o *order.Order) bool {
	material, labor, external := j.deriveActuals(o)
	summary := o.CostSummary()

	drift := false
	if !summary.Actual(order.ElementMaterial).Equal(material) {
		drift = true
		j.logger.WarnContext(ctx, "Actual material cost drifted from goods issues",
			"order", o.OrderNumber().String(),
			"stored", summary.Actual(order.ElementMaterial), "derived", material)
	}
	if !summary.Actual(order.ElementLabor).Equal(labor) {
		drift = true
		j.logger.WarnContext(ctx, "Actual labor cost drifted from confirmations",
			"order", o.OrderNumber().String(),
			"stored", summary.Actual(order.ElementLabor), "derived", labor)
	}
	if !summary.Actual(order.ElementExternal).Equal(external) {
		drift = true
		j.logger.WarnContext(ctx, "Actual external cost drifted from service documents",
			"order", o.OrderNumber().String(),
			"stored", summary.Actual(order.ElementExternal), "derived", external)
	}
	return drift
}
