// Package jobs provides scheduled background tasks for the tracking engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the tracking service.
//
// # Available Jobs
//
// 1. LedgerMonitorJob - Periodically snapshots the tracking ledger's health
// and timeline consistency and logs the result.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(healthHandler, cronSpec, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The monitor job never fails the scheduler. A DEGRADED or DOWN ledger, or
// any timeline inconsistency, is logged at warn level so operators notice
// without the engine stopping.
package jobs
