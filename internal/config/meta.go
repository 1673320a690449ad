package config

import (
	"reflect"
	"strings"

	"timekeeper/internal/logging"
	"timekeeper/paths"
)

// GetSettingsFilePath returns the path to settings.json
func GetSettingsFilePath() string {
	return paths.GetSettingsPath()
}

// exampleValues holds the value shown for each key in `settings meta`
var exampleValues = map[string]any{
	"daily_goal":    DefaultDailyGoal.String(),
	"date_format":   DefaultDateFormat,
	"debug":         false,
	"max_log_files": logging.DefaultMaxLogFiles,
	"start_of_week": strings.ToLower(DefaultStartOfWeek.String()),
	"time_format":   DefaultTimeFormat,
	"weekly_goal":   DefaultWeeklyGoal.String(),
}

// GetSettingsExample walks the Settings fields so every JSON key shows up,
// including ones added without an entry in exampleValues.
func GetSettingsExample() map[string]any {
	example := make(map[string]any)
	for _, field := range reflect.VisibleFields(reflect.TypeOf(Settings{})) {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		if value, ok := exampleValues[name]; ok {
			example[name] = value
			continue
		}
		example[name] = zeroExample(field.Type)
	}
	return example
}

func zeroExample(t reflect.Type) any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return false
	case reflect.Int, reflect.Int64:
		return 0
	case reflect.String:
		return ""
	}
	return nil
}
