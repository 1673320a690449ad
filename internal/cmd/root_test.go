package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"timekeeper/internal/config"
	"timekeeper/internal/logging"
)

func TestApplySettings(t *testing.T) {
	debug := true
	maxLogFiles := 5
	settings := &config.Settings{Debug: &debug, MaxLogFiles: &maxLogFiles}

	tests := []struct {
		name        string
		cli         CLI
		env         map[string]string
		wantDebug   bool
		wantMaxLogs int
	}{
		{
			name:        "settings fill defaults",
			cli:         CLI{MaxLogFiles: logging.DefaultMaxLogFiles},
			wantDebug:   true,
			wantMaxLogs: 5,
		},
		{
			name:        "explicit flags win",
			cli:         CLI{MaxLogFiles: 20},
			wantDebug:   true,
			wantMaxLogs: 20,
		},
		{
			name:        "environment wins over settings",
			cli:         CLI{MaxLogFiles: logging.DefaultMaxLogFiles},
			env:         map[string]string{"TIMEKEEPER_DEBUG": "", "TIMEKEEPER_MAX_LOG_FILES": "9"},
			wantDebug:   false,
			wantMaxLogs: logging.DefaultMaxLogFiles,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cli := tt.cli
			cli.SetSettings(settings)

			cli.applySettings()

			assert.Equal(t, tt.wantDebug, cli.Debug)
			assert.Equal(t, tt.wantMaxLogs, cli.MaxLogFiles)
		})
	}
}
