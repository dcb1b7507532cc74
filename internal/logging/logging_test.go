package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesDirectoryAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lagu.log")

	logger, closer, err := Open(path, slog.LevelInfo)
	require.NoError(t, err)
	logger.Info("first", "path", "/m/a.mp3")
	require.NoError(t, closer.Close())

	logger, closer, err = Open(path, slog.LevelInfo)
	require.NoError(t, err)
	logger.Info("second")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=first path=/m/a.mp3")
	assert.Contains(t, string(data), "msg=second")
}

func TestOpen_BadDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	_, _, err := Open(filepath.Join(file, "lagu.log"), slog.LevelInfo)

	assert.ErrorContains(t, err, "creating log directory")
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=WARN msg=shown")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("nothing") })
}
