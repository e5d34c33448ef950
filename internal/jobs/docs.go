// Package jobs provides scheduled background tasks for the booking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the booking service.
//
// # Available Jobs
//
// 1. CartCleanupJob - Removes carts whose expiry time has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cleanupHandler, "0 */10 * * * *", logger)
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
// Cron expressions use six fields with a leading seconds column. The cleanup
// schedule comes from configuration; expired carts do not need second-level
// responsiveness, so every ten minutes is the usual setting.
//
// # Error Handling
//
// The cleanup job logs failures and keeps running; a transient database
// error on one tick is retried naturally on the next.
package jobs
