package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// SessionPurger deletes sessions that expired at or before now.
type SessionPurger interface {
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// SessionPurgeJob removes expired login sessions every ten minutes.
type SessionPurgeJob struct {
	purger SessionPurger
	cron   *cron.Cron
	logger *slog.Logger
	now    func() time.Time
}

const sessionPurgeSchedule = "0 */10 * * * *"

func NewSessionPurgeJob(purger SessionPurger, logger *slog.Logger) *SessionPurgeJob {
	return &SessionPurgeJob{
		purger: purger,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "session_purge_job"),
		now:    time.Now,
	}
}

func (j *SessionPurgeJob) Start() error {
	if _, err := j.cron.AddFunc(sessionPurgeSchedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session purge job started", "schedule", sessionPurgeSchedule)
	return nil
}

func (j *SessionPurgeJob) run(ctx context.Context) {
	n, err := j.purger.PurgeExpired(ctx, j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Session purge job failed", "error", err)
		return
	}
	if n > 0 {
		j.logger.InfoContext(ctx, "Expired sessions purged", "count", n)
	}
}

// Stop waits for a running purge to finish.
func (j *SessionPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session purge job stopped")
}
