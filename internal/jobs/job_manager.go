package jobs

import (
	"fmt"
	"log/slog"

	"maitred/internal/core/application/usecases/commands"
	"maitred/internal/core/domain/model/catalog"
	"maitred/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderAcceptanceJob *OrderAcceptanceJob
	catalogReloadJob   *CatalogReloadJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the acceptance handler and the catalog cache as dependencies to
// wire up the job execution.
func NewJobManager(
	acceptOrdersHandler commands.AcceptOrdersCommandHandler,
	cache *catalog.Cache,
	catalogSource ports.CatalogRepository,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderAcceptanceJob: NewOrderAcceptanceJob(acceptOrdersHandler, logger),
		catalogReloadJob:   NewCatalogReloadJob(cache, catalogSource, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderAcceptanceJob.Start(); err != nil {
		return fmt.Errorf("failed to start order acceptance job: %w", err)
	}

	if err := jm.catalogReloadJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderAcceptanceJob.Stop()
		return fmt.Errorf("failed to start catalog reload job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.catalogReloadJob.Stop()
	jm.orderAcceptanceJob.Stop()
}
