// Package jobs provides scheduled background tasks for the ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required around the conversation engine.
//
// # Available Jobs
//
// 1. OrderAcceptanceJob - Runs every thirty seconds to move placed orders into the accepted status
// 2. CatalogReloadJob - Runs every ten minutes to refresh the in-memory catalog from the database
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(acceptOrdersHandler, cache, catalogRepo, logger)
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
// The acceptance job uses the cron expression "*/30 * * * * *"; the reload
// job uses "0 */10 * * * *". Acceptance is frequent enough that a customer
// sees the kitchen pick the order up shortly after checkout, while catalog
// edits are rare enough that a ten minute refresh window is acceptable.
//
// # Error Handling
//
// - The acceptance job logs every failure; an empty batch is a no-op, not an error
// - The reload job keeps serving the previous catalog snapshot when a refresh fails
// - Failed job starts will stop any already running jobs
package jobs
