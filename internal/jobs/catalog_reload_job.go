package jobs

import (
	"context"
	"log/slog"

	"maitred/internal/core/domain/model/catalog"
	"maitred/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// CatalogReloadJob manages the scheduled refresh of the in-memory catalog.
// Runs every ten minutes so price and availability edits made in the
// database reach the conversation without a restart.
type CatalogReloadJob struct {
	cache  *catalog.Cache
	source ports.CatalogRepository
	cron   *cron.Cron
	logger *slog.Logger
}

// NewCatalogReloadJob creates a new job for refreshing the catalog cache.
func NewCatalogReloadJob(cache *catalog.Cache, source ports.CatalogRepository, logger *slog.Logger) *CatalogReloadJob {
	return &CatalogReloadJob{
		cache:  cache,
		source: source,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "catalog_reload_job"),
	}
}

// Start begins the catalog reload job to run every ten minutes.
func (j *CatalogReloadJob) Start() error {
	_, err := j.cron.AddFunc("0 */10 * * * *", func() {
		ctx := context.Background()

		// a failed reload keeps serving the previous snapshot
		if err := j.cache.Reload(ctx, j.source); err != nil {
			j.logger.ErrorContext(ctx, "Catalog reload job failed", "error", err)
			return
		}

		snapshot, err := j.cache.Snapshot()
		if err != nil {
			j.logger.ErrorContext(ctx, "Catalog reload job failed", "error", err)
			return
		}
		j.logger.InfoContext(ctx, "Catalog reloaded",
			"dinners", len(snapshot.Dinners()),
			"styles", len(snapshot.Styles()),
			"menu_items", len(snapshot.MenuItems()),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog reload job started (running every ten minutes)")
	return nil
}

// Stop stops the catalog reload job.
func (j *CatalogReloadJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Catalog reload job stopped")
}
