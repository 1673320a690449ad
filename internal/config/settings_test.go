package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFile(t *testing.T) {
	t.Setenv("TIMEKEEPER_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, DefaultDailyGoal, settings.GetDailyGoal())
	assert.Equal(t, DefaultWeeklyGoal, settings.GetWeeklyGoal())
	assert.Equal(t, time.Monday, settings.GetStartOfWeek())
	assert.Equal(t, "06-01-02", settings.GetDateFormat())
	assert.Equal(t, "15:04", settings.GetTimeFormat())
}

func TestLoadSettings_Values(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"daily_goal": "7h30m",
		"weekly_goal": 0,
		"start_of_week": "sun",
		"date_format": "2006-01-02",
		"debug": true,
		"max_log_files": 5
	}`), 0644))

	settings, err := LoadSettingsFrom(path)

	require.NoError(t, err)
	assert.Equal(t, 7*time.Hour+30*time.Minute, settings.GetDailyGoal())
	assert.Equal(t, time.Duration(0), settings.GetWeeklyGoal())
	assert.Equal(t, time.Sunday, settings.GetStartOfWeek())
	assert.Equal(t, "2006-01-02", settings.GetDateFormat())
	assert.Equal(t, "15:04", settings.GetTimeFormat())
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	require.NotNil(t, settings.MaxLogFiles)
	assert.Equal(t, 5, *settings.MaxLogFiles)
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed json", content: `{`},
		{name: "bad goal", content: `{"daily_goal": "eight hours"}`},
		{name: "negative goal", content: `{"daily_goal": "-1h"}`},
		{name: "bad weekday", content: `{"start_of_week": "someday"}`},
		{name: "weekday out of range", content: `{"start_of_week": 9}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadSettingsFrom(path)
			assert.Error(t, err)
		})
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input string
		want  time.Weekday
	}{
		{"monday", time.Monday},
		{"Monday", time.Monday},
		{"tue", time.Tuesday},
		{" SAT ", time.Saturday},
		{"0", time.Sunday},
		{"6", time.Saturday},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeekday(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseWeekday("mo")
	assert.Error(t, err)
}

func TestSaveSettings(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("TIMEKEEPER_HOME", home)

	goal := GoalDuration(6 * time.Hour)
	start := Weekday(time.Wednesday)
	require.NoError(t, SaveSettings(&Settings{DailyGoal: &goal, StartOfWeek: &start}))

	data, err := os.ReadFile(filepath.Join(home, "settings.json"))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "6h0m0s", raw["daily_goal"])
	assert.Equal(t, "wednesday", raw["start_of_week"])

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, 6*time.Hour, loaded.GetDailyGoal())
	assert.Equal(t, time.Wednesday, loaded.GetStartOfWeek())
}

func TestGetSettingsExample(t *testing.T) {
	example := GetSettingsExample()

	assert.Equal(t, "8h0m0s", example["daily_goal"])
	assert.Equal(t, "40h0m0s", example["weekly_goal"])
	assert.Equal(t, "monday", example["start_of_week"])
	assert.Equal(t, DefaultDateFormat, example["date_format"])
	assert.Equal(t, 1000, example["max_log_files"])
	assert.Len(t, example, 7)
}
