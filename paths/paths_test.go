package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTimekeeperHome(t *testing.T) {
	t.Run("uses TIMEKEEPER_HOME", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("TIMEKEEPER_HOME", dir)

		assert.Equal(t, dir, GetTimekeeperHome())
		assert.Equal(t, filepath.Join(dir, "timekeeper.db"), GetDBPath())
		assert.Equal(t, filepath.Join(dir, "settings.json"), GetSettingsPath())
	})

	t.Run("defaults to ~/.timekeeper", func(t *testing.T) {
		t.Setenv("TIMEKEEPER_HOME", "")
		homeDir, err := os.UserHomeDir()
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(homeDir, ".timekeeper"), GetTimekeeperHome())
	})
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(homeDir, "data", "tk.db"), ExpandPath("~/data/tk.db"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}
