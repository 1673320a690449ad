package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"timekeeper/internal/config"
	"timekeeper/internal/logging"
	"timekeeper/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Start the timekeeper dashboard (default)" default:"1"`
	Start    StartCmd    `cmd:"start" help:"Start the stopwatch"`
	Stop     StopCmd     `cmd:"stop" help:"Stop the stopwatch"`
	Status   StatusCmd   `cmd:"status" help:"Show stopwatch state and goal progress"`
	Today    TodayCmd    `cmd:"today" help:"Show the blocks of a day"`
	Week     WeekCmd     `cmd:"week" help:"Show the days of a week"`
	Blocks   BlocksCmd   `cmd:"blocks" help:"Manage time blocks (list, retag, del)"`
	Tags     TagsCmd     `cmd:"tags" help:"Manage tags (list, add, rename, del, purge)"`
	Settings SettingsCmd `cmd:"settings" help:"Show settings (show, meta)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply runs once flags are parsed: it folds settings.json into the
// flags, starts logging, and builds the container.
func (c *CLI) AfterApply() error {
	c.applySettings()

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if logFilePath != "" {
		logging.Logger.Info("Debug logging enabled", "file", logFilePath)
	}

	// after logging, so the GORM bridge writes to the real logger
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container
	return nil
}

// applySettings fills flags left at their defaults from settings.json, unless
// the matching TIMEKEEPER_* variable is set. Precedence is flag, env, file, default.
func (c *CLI) applySettings() {
	if c.settings == nil {
		return
	}

	if c.MaxLogFiles == logging.DefaultMaxLogFiles && !envSet("TIMEKEEPER_MAX_LOG_FILES") && c.settings.MaxLogFiles != nil {
		c.MaxLogFiles = *c.settings.MaxLogFiles
	}
	if !c.Debug && !envSet("TIMEKEEPER_DEBUG") && c.settings.Debug != nil {
		c.Debug = *c.settings.Debug
	}
}

func envSet(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// RunCmd starts the dashboard
type RunCmd struct{}

// Run executes the dashboard
func (r *RunCmd) Run(container *Container) error {
	logging.Logger.Info("Starting timekeeper dashboard")

	settings := container.Settings
	p := tea.NewProgram(
		ui.NewModel(
			container.StopwatchService,
			container.HistoryService,
			container.TagService,
			container.BlockService,
			ui.DisplayConfig{
				DateFormat: settings.GetDateFormat(),
				InMemory:   container.InMemory(),
				TimeFormat: settings.GetTimeFormat(),
			},
		),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("Dashboard error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("Dashboard exited normally")
	return nil
}
