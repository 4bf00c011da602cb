package jobs

import (
	"context"
	"log/slog"

	"eshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OverdueShipmentJob manages the scheduled sweep of overdue shipments.
// Runs every minute to fail non-terminal shipments whose due date has
// passed.
type OverdueShipmentJob struct {
	handler commands.FailOverdueShipmentsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueShipmentJob creates a new job for the overdue sweep.
func NewOverdueShipmentJob(handler commands.FailOverdueShipmentsCommandHandler, logger *slog.Logger) *OverdueShipmentJob {
	return &OverdueShipmentJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_shipment_job"),
	}
}

// Start begins the overdue sweep job to run every minute.
func (j *OverdueShipmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewFailOverdueShipmentsCommand()

		failed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue shipment job failed", "error", err)
			return
		}

		if failed > 0 {
			j.logger.InfoContext(ctx, "Failed overdue shipments", "count", failed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue shipment job started (running every minute)")
	return nil
}

// Stop stops the overdue sweep job.
func (j *OverdueShipmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue shipment job stopped")
}
