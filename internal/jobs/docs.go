// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order workflow.
//
// # Available Jobs
//
// 1. OverdueNoticeJob - Periodically finds in-progress orders past their
// delivery due date with nothing delivered and warns both parties.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(uowFactory, notifier, logger)
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
// Overdue notices are informational: a failed scan or send is logged and
// retried on the next tick, and no order state is ever changed.
package jobs
