package paths

import (
	"os"
	"path/filepath"
)

// GetTimekeeperHome returns TIMEKEEPER_HOME or ~/.timekeeper default
func GetTimekeeperHome() string {
	home := os.Getenv("TIMEKEEPER_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".timekeeper"
		}
		return filepath.Join(homeDir, ".timekeeper")
	}
	return ExpandPath(home)
}

// GetDBPath returns $TIMEKEEPER_HOME/timekeeper.db
func GetDBPath() string {
	return filepath.Join(GetTimekeeperHome(), "timekeeper.db")
}

// GetSettingsPath returns $TIMEKEEPER_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetTimekeeperHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
