// Package jobs provides scheduled background tasks for the booking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the reservation service.
//
// # Available Jobs
//
// 1. OrderExpiryJob - Runs every minute to reject pending reservations whose
// start time has already passed without a review verdict.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireOrdersHandler, logger)
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
// The expiry job uses the cron expression "0 * * * * *" which means it runs
// at the start of every minute. A reservation awaiting review cannot be
// honored once its start time is in the past, so minute granularity is
// enough.
//
// # Error Handling
//
// - Expiry job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
