package jobs

import (
	"fmt"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueNoticeJob *OverdueNoticeJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	uowFactory commands.OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueNoticeJob: NewOverdueNoticeJob(uowFactory, notifier, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueNoticeJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue notice job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueNoticeJob.Stop()
}
