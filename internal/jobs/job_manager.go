package jobs

import (
	"fmt"
	"log/slog"

	"parceltrack/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	ledgerMonitorJob *LedgerMonitorJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	healthHandler queries.LedgerHealthQueryHandler,
	monitorSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		ledgerMonitorJob: NewLedgerMonitorJob(healthHandler, monitorSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.ledgerMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start ledger monitor job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.ledgerMonitorJob.Stop()
}
