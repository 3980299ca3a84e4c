package logger_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"snackshop/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}

func TestNew_FileOutputWritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snackshop.log")

	log, closer, err := logger.New(logger.Config{Level: "info", Format: "json", Output: "file", File: path})
	require.NoError(t, err)
	log.Info("order placed", "orderId", 7)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"order placed"`)
	assert.Contains(t, string(data), `"orderId":7`)
}

func TestNew_DebugLevelFiltersNothing(t *testing.T) {
	log, _, err := logger.New(logger.Config{Level: "debug", Format: "text"})
	require.NoError(t, err)

	assert.True(t, log.Enabled(t.Context(), slog.LevelDebug))
}
