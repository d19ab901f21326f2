package jobs

import (
	"fmt"
	"log/slog"

	"maintenance/internal/core/ports"

	"github.com/shopspring/decimal"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	costAuditJob *CostAuditJob
}

// NewJobManager creates a job manager with all scheduled jobs wired.
func NewJobManager(orders ports.OrderRepository, laborRate decimal.Decimal, logger *slog.Logger) *JobManager {
	return &JobManager{
		costAuditJob: NewCostAuditJob(orders, laborRate, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.costAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start cost audit job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.costAuditJob.Stop()
}
