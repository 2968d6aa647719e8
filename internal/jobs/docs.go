// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ordering service.
//
// # Available Jobs
//
// 1. DeliveryProgressionJob - Runs every 30 seconds to advance confirmed
// orders through preparation, dispatch, and delivery.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(advanceStatusesHandler, logger)
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
// The progression job uses the cron expression "*/30 * * * * *", advancing
// each undelivered order by one status step every 30 seconds. Orders pass
// through Confirmed, Preparing, Out for Delivery, and Delivered.
//
// # Error Handling
//
// Progression failures are logged and retried on the next tick; a failed run
// leaves order records unchanged because each run commits atomically.
package jobs
