package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateLogs_RemovesOldest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)

	for i, name := range []string{"a.log", "b.log", "c.log", "notes.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		modTime := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, modTime, modTime))
	}

	require.NoError(t, rotateLogs(dir, 2))

	assert.NoFileExists(t, filepath.Join(dir, "a.log"))
	assert.NoFileExists(t, filepath.Join(dir, "b.log"))
	assert.FileExists(t, filepath.Join(dir, "c.log"))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"), "non-log files are left alone")
}

func TestRotateLogs_UnderLimit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("x"), 0644))

	require.NoError(t, rotateLogs(dir, 5))

	assert.FileExists(t, filepath.Join(dir, "a.log"))
}

func TestInitialize_DebugFile(t *testing.T) {
	t.Setenv("TIMEKEEPER_DEBUG", "")
	t.Setenv("TIMEKEEPER_DEBUG_FILE", "")
	path := filepath.Join(t.TempDir(), "logs", "debug.log")

	got, err := Initialize(false, path, DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	Logger.Info("hello from test")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestInitialize_DisabledDiscards(t *testing.T) {
	t.Setenv("TIMEKEEPER_DEBUG", "")
	t.Setenv("TIMEKEEPER_DEBUG_FILE", "")

	got, err := Initialize(false, "", DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, Logger)
}

func TestResolveOptions_Environment(t *testing.T) {
	t.Setenv("TIMEKEEPER_DEBUG", "1")
	t.Setenv("TIMEKEEPER_DEBUG_FILE", "/tmp/parent.log")
	t.Setenv("TIMEKEEPER_MAX_LOG_FILES", "7")

	opts := resolveOptions(false, "", DefaultMaxLogFiles)
	assert.True(t, opts.debug)
	assert.True(t, opts.inherited)
	assert.Equal(t, "/tmp/parent.log", opts.debugFile)
	assert.Equal(t, 7, opts.maxLogFiles)

	opts = resolveOptions(false, "/tmp/own.log", 3)
	assert.Equal(t, "/tmp/own.log", opts.debugFile, "flags win over the environment")
	assert.Equal(t, 3, opts.maxLogFiles)
}
