// Package jobs provides scheduled background tasks for the video store.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. UnpaidOrderCancellationJob - Runs every minute to cancel orders that were never paid within the configured TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelUnpaidOrdersHandler, unpaidOrderTTL, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses the cron expression "0 * * * * *" which means it runs at the
// start of every minute. Payment deadlines are soft, so minute-level precision
// is enough.
//
// # Error Handling
//
// - Sweep errors are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
