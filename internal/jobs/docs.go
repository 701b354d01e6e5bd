// Package jobs provides scheduled background tasks for the fulfillment
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. AllocationNotificationJob - Runs every minute to re-dispatch vendor
// notifications for allocation requests stuck in pending
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(notifyPendingAllocationsHandler, logger)
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
// The notification job ignores the expected empty-sweep outcome and logs
// everything else; an unreachable vendor keeps its allocation pending for
// the next sweep rather than failing the job.
package jobs
