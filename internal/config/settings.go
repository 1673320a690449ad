package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"timekeeper/paths"
)

const (
	// DefaultDateFormat is the Go layout used for dates in the dashboard
	DefaultDateFormat = "06-01-02"
	// DefaultTimeFormat is the Go layout used for clock times
	DefaultTimeFormat = "15:04"
	// DefaultDailyGoal is the daily goal when none is configured
	DefaultDailyGoal = 8 * time.Hour
	// DefaultWeeklyGoal is the weekly goal when none is configured
	DefaultWeeklyGoal = 40 * time.Hour
	// DefaultStartOfWeek is the weekday a week view starts on
	DefaultStartOfWeek = time.Monday
)

// GoalDuration supports "7h30m" or a number of seconds in JSON
type GoalDuration time.Duration

// UnmarshalJSON implements custom unmarshaling for GoalDuration
func (g *GoalDuration) UnmarshalJSON(data []byte) error {
	// Try number of seconds first
	var seconds int64
	if err := json.Unmarshal(data, &seconds); err == nil {
		*g = GoalDuration(time.Duration(seconds) * time.Second)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("goal must be a duration string or seconds: %w", err)
	}
	d, err := time.ParseDuration(strings.TrimSpace(str))
	if err != nil {
		return fmt.Errorf("invalid goal %q: %w", str, err)
	}
	*g = GoalDuration(d)
	return nil
}

// MarshalJSON implements custom marshaling for GoalDuration
func (g GoalDuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(g).String())
}

// Weekday supports "monday", "Mon" or 0-6 (Sunday = 0) in JSON
type Weekday time.Weekday

// ParseWeekday parses a weekday name, its three letter prefix, or its number
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("weekday number %d out of range 0-6", n)
		}
		return time.Weekday(n), nil
	}

	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || (len(s) == 3 && strings.HasPrefix(name, s)) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// UnmarshalJSON implements custom unmarshaling for Weekday
func (w *Weekday) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		d, err := ParseWeekday(strconv.Itoa(n))
		if err != nil {
			return err
		}
		*w = Weekday(d)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	d, err := ParseWeekday(str)
	if err != nil {
		return err
	}
	*w = Weekday(d)
	return nil
}

// MarshalJSON implements custom marshaling for Weekday
func (w Weekday) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToLower(time.Weekday(w).String()))
}

// Settings represents the structure of ~/.timekeeper/settings.json
type Settings struct {
	DailyGoal   *GoalDuration `json:"daily_goal,omitempty"`
	DateFormat  string        `json:"date_format,omitempty"`
	Debug       *bool         `json:"debug,omitempty"`
	MaxLogFiles *int          `json:"max_log_files,omitempty"`
	StartOfWeek *Weekday      `json:"start_of_week,omitempty"`
	TimeFormat  string        `json:"time_format,omitempty"`
	WeeklyGoal  *GoalDuration `json:"weekly_goal,omitempty"`
}

// GetDailyGoal returns the configured daily goal, 0 meaning disabled
func (s *Settings) GetDailyGoal() time.Duration {
	if s == nil || s.DailyGoal == nil {
		return DefaultDailyGoal
	}
	return time.Duration(*s.DailyGoal)
}

// GetWeeklyGoal returns the configured weekly goal, 0 meaning disabled
func (s *Settings) GetWeeklyGoal() time.Duration {
	if s == nil || s.WeeklyGoal == nil {
		return DefaultWeeklyGoal
	}
	return time.Duration(*s.WeeklyGoal)
}

// GetStartOfWeek returns the weekday a week starts on
func (s *Settings) GetStartOfWeek() time.Weekday {
	if s == nil || s.StartOfWeek == nil {
		return DefaultStartOfWeek
	}
	return time.Weekday(*s.StartOfWeek)
}

// GetDateFormat returns the Go layout for dates
func (s *Settings) GetDateFormat() string {
	if s == nil || s.DateFormat == "" {
		return DefaultDateFormat
	}
	return s.DateFormat
}

// GetTimeFormat returns the Go layout for clock times
func (s *Settings) GetTimeFormat() string {
	if s == nil || s.TimeFormat == "" {
		return DefaultTimeFormat
	}
	return s.TimeFormat
}

// Validate rejects negative goals
func (s *Settings) Validate() error {
	if s.GetDailyGoal() < 0 {
		return fmt.Errorf("daily_goal must not be negative")
	}
	if s.GetWeeklyGoal() < 0 {
		return fmt.Errorf("weekly_goal must not be negative")
	}
	return nil
}

// LoadSettings loads settings from $TIMEKEEPER_HOME/settings.json (or ~/.timekeeper/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(paths.GetSettingsPath())
}

// LoadSettingsFrom loads settings from path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $TIMEKEEPER_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := paths.GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
