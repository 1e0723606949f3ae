// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. EventRedeliveryJob - Runs every 15 seconds to retry domain events whose
// kafka publication failed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(kafkaBus, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A redelivery run that leaves messages behind logs a warning and leaves
// them buffered for the next run; the job itself never stops on failure.
package jobs
