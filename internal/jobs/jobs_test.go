package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionPurger struct {
	mock.Mock
}

func (m *MockSessionPurger) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockLimiterPruner struct {
	mock.Mock
}

func (m *MockLimiterPruner) Prune(idle time.Duration) int {
	return m.Called(idle).Int(0)
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestSessionPurgeJob_Run(t *testing.T) {
	now := time.Date(2024, 11, 20, 10, 0, 0, 0, time.UTC)

	t.Run("logs purged count", func(t *testing.T) {
		purger := &MockSessionPurger{}
		purger.On("PurgeExpired", mock.Anything, now).Return(int64(3), nil)
		logger, buf := bufferLogger()
		job := NewSessionPurgeJob(purger, logger)
		job.now = func() time.Time { return now }

		job.run(context.Background())

		purger.AssertExpectations(t)
		assert.Contains(t, buf.String(), "count=3")
		assert.Contains(t, buf.String(), "component=session_purge_job")
	})

	t.Run("logs failures", func(t *testing.T) {
		purger := &MockSessionPurger{}
		purger.On("PurgeExpired", mock.Anything, now).Return(int64(0), errors.New("db down"))
		logger, buf := bufferLogger()
		job := NewSessionPurgeJob(purger, logger)
		job.now = func() time.Time { return now }

		job.run(context.Background())

		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "db down")
	})
}

func TestLimiterPruneJob_Run(t *testing.T) {
	pruner := &MockLimiterPruner{}
	pruner.On("Prune", time.Hour).Return(2)
	logger, _ := bufferLogger()
	job := NewLimiterPruneJob(pruner, time.Hour, logger)

	job.run()

	pruner.AssertExpectations(t)
}

func TestJobManager_StartStop(t *testing.T) {
	logger, buf := bufferLogger()
	jm := NewJobManager(&MockSessionPurger{}, &MockLimiterPruner{}, time.Hour, logger)

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Contains(t, buf.String(), "Session purge job started")
	assert.Contains(t, buf.String(), "Limiter prune job stopped")
}
