package jobs

import (
	"context"
	"log/slog"

	"maitred/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderAcceptanceJob manages the scheduled acceptance of placed orders.
// Runs every thirty seconds to move newly placed orders into the kitchen queue.
type OrderAcceptanceJob struct {
	handler commands.AcceptOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderAcceptanceJob creates a new job for accepting placed orders.
// Uses AcceptOrdersCommandHandler to process acceptance batches.
func NewOrderAcceptanceJob(handler commands.AcceptOrdersCommandHandler, logger *slog.Logger) *OrderAcceptanceJob {
	return &OrderAcceptanceJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_acceptance_job"),
	}
}

// Start begins the order acceptance job to run every thirty seconds.
func (j *OrderAcceptanceJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAcceptOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order acceptance job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order acceptance job started (running every thirty seconds)")
	return nil
}

// Stop stops the order acceptance job.
func (j *OrderAcceptanceJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order acceptance job stopped")
}
