package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"timekeeper/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options"`
	Show SettingsShowCmd `cmd:"show" help:"Show effective settings" default:"1"`
}

// SettingsShowCmd displays the effective settings
type SettingsShowCmd struct{}

// Run executes the show command
func (s *SettingsShowCmd) Run(container *Container) error {
	settings := container.Settings

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "settings_file\t%s\n", config.GetSettingsFilePath())
	fmt.Fprintf(w, "store\t%s\n", container.StorePath())
	fmt.Fprintf(w, "daily_goal\t%s\n", describeGoal(settings.GetDailyGoal()))
	fmt.Fprintf(w, "weekly_goal\t%s\n", describeGoal(settings.GetWeeklyGoal()))
	fmt.Fprintf(w, "start_of_week\t%s\n", strings.ToLower(settings.GetStartOfWeek().String()))
	fmt.Fprintf(w, "date_format\t%s\n", settings.GetDateFormat())
	fmt.Fprintf(w, "time_format\t%s\n", settings.GetTimeFormat())
	w.Flush()

	if container.InMemory() {
		fmt.Println("\nStore unavailable: saving disabled")
	}
	return nil
}

func describeGoal(goal time.Duration) string {
	if goal <= 0 {
		return "disabled"
	}
	return goal.String()
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run() error {
	settingsFile := config.GetSettingsFilePath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%v\n", key, example[key])
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Goals accept a duration (\"7h30m\") or seconds; 0 disables a goal.")
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}
