package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryProgressionJob manages the scheduled advancement of confirmed
// orders. Runs every 30 seconds to move undelivered orders one status step
// forward until they are delivered.
type DeliveryProgressionJob struct {
	handler commands.AdvanceDeliveryStatusesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryProgressionJob creates a new job for advancing delivery statuses.
// Uses AdvanceDeliveryStatusesCommandHandler to progress orders every 30 seconds.
func NewDeliveryProgressionJob(
	handler commands.AdvanceDeliveryStatusesCommandHandler,
	logger *slog.Logger,
) *DeliveryProgressionJob {
	return &DeliveryProgressionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_progression_job"),
	}
}

// Start begins the delivery progression job to run every 30 seconds.
func (j *DeliveryProgressionJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAdvanceDeliveryStatusesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery progression job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery progression job started (running every 30 seconds)")
	return nil
}

// Stop stops the delivery progression job.
func (j *DeliveryProgressionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery progression job stopped")
}
