package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	eventRedeliveryJob *EventRedeliveryJob
}

// NewJobManager creates a job manager wiring the redelivery job to the
// broker-backed event bus.
func NewJobManager(bus Redeliverer, logger *slog.Logger) *JobManager {
	return &JobManager{
		eventRedeliveryJob: NewEventRedeliveryJob(bus, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.eventRedeliveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start event redelivery job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.eventRedeliveryJob.Stop()
}
