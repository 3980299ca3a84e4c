// Package jobs provides scheduled background tasks for the shop.
//
// Jobs are built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SessionPurgeJob - Runs every ten minutes and deletes expired login sessions
// 2. LimiterPruneJob - Runs every five minutes and drops idle per-IP lookup limiters
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(revokeSessionsHandler, server.Limiter(), time.Hour, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Purge failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
