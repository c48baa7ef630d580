package jobs

import (
	"context"
	"log/slog"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultMonitorSpec runs the ledger monitor once a minute.
const DefaultMonitorSpec = "0 * * * * *"

// LedgerMonitorJob periodically snapshots the tracking ledger's health and
// timeline consistency and logs the result.
type LedgerMonitorJob struct {
	handler queries.LedgerHealthQueryHandler
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLedgerMonitorJob creates a monitor job running on the given cron spec.
// An empty spec falls back to DefaultMonitorSpec.
func NewLedgerMonitorJob(handler queries.LedgerHealthQueryHandler, spec string, logger *slog.Logger) *LedgerMonitorJob {
	if spec == "" {
		spec = DefaultMonitorSpec
	}

	return &LedgerMonitorJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "ledger_monitor_job"),
	}
}

// Start begins the scheduled health snapshots.
func (j *LedgerMonitorJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.RunOnce(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Ledger monitor job started", "spec", j.spec)
	return nil
}

// RunOnce takes a single health snapshot and logs it. Degraded states and
// timeline inconsistencies are logged at warn level.
func (j *LedgerMonitorJob) RunOnce(ctx context.Context) {
	response, err := j.handler.Handle(ctx, queries.NewLedgerHealthQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Ledger health snapshot failed", "error", err)
		return
	}

	attrs := []any{
		"state", response.State,
		"event_count", response.EventCount,
		"error_count", response.ErrorCount,
		"consistency_issues", response.ConsistencyIssues,
	}

	if response.State != string(ports.HealthUp) || response.ConsistencyIssues > 0 {
		j.logger.WarnContext(ctx, "Tracking ledger needs attention", attrs...)
		return
	}

	j.logger.InfoContext(ctx, "Tracking ledger healthy", attrs...)
}

// Stop stops the monitor job.
func (j *LedgerMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Ledger monitor job stopped")
}
