package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Redeliverer retries previously failed event publications. The kafka event
// bus implements it.
type Redeliverer interface {
	Redeliver(ctx context.Context) error
	PendingCount() int
}

// EventRedeliveryJob periodically flushes the event bus's redelivery buffer
// so that a broker outage delays events instead of losing them.
type EventRedeliveryJob struct {
	bus    Redeliverer
	cron   *cron.Cron
	logger *slog.Logger
}

// NewEventRedeliveryJob creates a job retrying failed publications every
// 15 seconds.
func NewEventRedeliveryJob(bus Redeliverer, logger *slog.Logger) *EventRedeliveryJob {
	return &EventRedeliveryJob{
		bus:    bus,
		cron:   cron.New(),
		logger: logger.With("component", "event_redelivery_job"),
	}
}

// Start begins the redelivery schedule.
func (j *EventRedeliveryJob) Start() error {
	_, err := j.cron.AddFunc("@every 15s", func() {
		ctx := context.Background()

		if j.bus.PendingCount() == 0 {
			return
		}

		if err := j.bus.Redeliver(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Event redelivery job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Event redelivery job started (running every 15 seconds)")
	return nil
}

// Stop stops the redelivery job.
func (j *EventRedeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Event redelivery job stopped")
}
