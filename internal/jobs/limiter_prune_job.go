package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// LimiterPruner forgets clients that have been idle longer than idle.
type LimiterPruner interface {
	Prune(idle time.Duration) int
}

// LimiterPruneJob keeps the per-IP lookup limiter from growing without
// bound.
type LimiterPruneJob struct {
	pruner LimiterPruner
	idle   time.Duration
	cron   *cron.Cron
	logger *slog.Logger
}

const limiterPruneSchedule = "@every 5m"

func NewLimiterPruneJob(pruner LimiterPruner, idle time.Duration, logger *slog.Logger) *LimiterPruneJob {
	return &LimiterPruneJob{
		pruner: pruner,
		idle:   idle,
		cron:   cron.New(),
		logger: logger.With("component", "limiter_prune_job"),
	}
}

func (j *LimiterPruneJob) Start() error {
	if _, err := j.cron.AddFunc(limiterPruneSchedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Limiter prune job started", "schedule", limiterPruneSchedule)
	return nil
}

func (j *LimiterPruneJob) run() {
	if n := j.pruner.Prune(j.idle); n > 0 {
		j.logger.Debug("Idle rate limiters removed", "count", n)
	}
}

func (j *LimiterPruneJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Limiter prune job stopped")
}
