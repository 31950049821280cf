package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerWritesToFile(t *testing.T) {
	logfile := filepath.Join(t.TempDir(), "logs", "anoabi.log")

	logger, err := NewLogger(logfile, false)
	assert.NoError(t, err)

	logger.Info("abi check started")

	contents, err := os.ReadFile(logfile)
	assert.NoError(t, err)
	assert.Contains(t, string(contents), "abi check started")
}

func TestNewLoggerDefaultsToStderr(t *testing.T) {
	logger, err := NewLogger("", true)
	assert.NoError(t, err)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestErrorWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ew := NewErrorWriter(logger)
	n, err := ew.Write([]byte("boom\n"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Contains(t, buf.String(), "boom")
}
