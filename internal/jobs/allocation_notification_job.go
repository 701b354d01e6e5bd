package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AllocationNotificationJob retries vendor notifications for allocation
// requests stuck in pending. Runs every minute; a sweep with nothing to
// retry is the normal case.
type AllocationNotificationJob struct {
	handler commands.NotifyPendingAllocationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAllocationNotificationJob creates a new job for re-dispatching vendor
// notifications. Uses NotifyPendingAllocationsCommandHandler to run the
// sweep every minute.
func NewAllocationNotificationJob(handler commands.NotifyPendingAllocationsCommandHandler, logger *slog.Logger) *AllocationNotificationJob {
	return &AllocationNotificationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "allocation_notification_job"),
	}
}

// Start begins the allocation notification job to run every minute.
func (j *AllocationNotificationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewNotifyPendingAllocationsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty sweep is an expected business scenario
			if !errors.Is(err, commands.ErrNoPendingAllocationsFound) {
				j.logger.ErrorContext(ctx, "Allocation notification job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Allocation notification job started (running every minute)")
	return nil
}

// Stop stops the allocation notification job.
func (j *AllocationNotificationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Allocation notification job stopped")
}
