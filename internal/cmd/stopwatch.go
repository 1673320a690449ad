package cmd

import (
	"context"
	"fmt"
	"time"

	"timekeeper/internal/domain"
	"timekeeper/internal/logging"
)

// StartCmd starts the stopwatch
type StartCmd struct {
	Tag string `help:"Tag the new block" short:"t"`
}

// Run executes the start command
func (s *StartCmd) Run(container *Container) error {
	logging.Logger.Info("Executing start command", "tag", s.Tag)
	ctx := context.Background()

	var tag *domain.Tag
	if s.Tag != "" {
		found, err := container.TagService.Find(ctx, s.Tag)
		if err != nil {
			return err
		}
		tag = found
	}

	block, err := container.StopwatchService.Start(ctx, tag)
	if err != nil {
		return err
	}

	fmt.Printf("Started block %d at %s", block.ID, block.Start.Format(container.Settings.GetTimeFormat()))
	if tag != nil {
		fmt.Printf(" [%s]", tag.Name)
	}
	fmt.Println()
	return nil
}

// StopCmd stops the stopwatch
type StopCmd struct{}

// Run executes the stop command
func (s *StopCmd) Run(container *Container) error {
	logging.Logger.Info("Executing stop command")

	block, err := container.StopwatchService.Stop(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Stopped block %d after %s\n", block.ID, domain.FormatDuration(block.Duration()))
	return nil
}

// StatusCmd shows the stopwatch state and goal progress
type StatusCmd struct{}

// Run executes the status command
func (s *StatusCmd) Run(container *Container) error {
	ctx := context.Background()

	if err := container.StopwatchService.Tick(ctx); err != nil {
		return err
	}

	now := time.Now()
	overview, err := container.HistoryService.Overview(ctx, now)
	if err != nil {
		return err
	}

	if overview.Current != nil {
		fmt.Printf("Running since %s (%s)",
			overview.Current.Start.Format(container.Settings.GetTimeFormat()),
			domain.FormatDuration(overview.Current.Duration()))
		if name := overview.Current.TagName(); name != "" {
			fmt.Printf(" [%s]", name)
		}
		fmt.Println()
	} else {
		fmt.Println("Stopped")
	}

	fmt.Printf("Today: %s, %s\n", domain.FormatDuration(overview.Today.Total), overview.DailyGoal.Describe())
	if at, ok := overview.DailyGoal.FinishesAt(now, overview.Current != nil); ok {
		fmt.Printf("  finishes at %s\n", at.Format(container.Settings.GetTimeFormat()))
	}
	fmt.Printf("Week:  %s, %s\n", domain.FormatDuration(overview.WeekTotal), overview.WeeklyGoal.Describe())

	if container.InMemory() {
		fmt.Println("Store unavailable: saving disabled")
	}
	return nil
}
