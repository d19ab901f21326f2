// Package jobs provides scheduled background tasks for the maintenance
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping that must not run inside request handling.
//
// # Available Jobs
//
// 1. CostAuditJob - Runs hourly to re-derive every order's actual costs from
// its goods movements and confirmations and report drift against the stored
// cost summary
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderRepository, laborRate, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The audit job only reports: drift is logged at warn level and never
// repaired automatically. Failures of a whole audit pass are logged and the
// next scheduled run starts fresh.
package jobs
