package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	sessionPurgeJob *SessionPurgeJob
	limiterPruneJob *LimiterPruneJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	purger SessionPurger,
	pruner LimiterPruner,
	limiterIdle time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		sessionPurgeJob: NewSessionPurgeJob(purger, logger),
		limiterPruneJob: NewLimiterPruneJob(pruner, limiterIdle, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start session purge job: %w", err)
	}

	if err := jm.limiterPruneJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.sessionPurgeJob.Stop()
		return fmt.Errorf("failed to start limiter prune job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.limiterPruneJob.Stop()
	jm.sessionPurgeJob.Stop()
}
