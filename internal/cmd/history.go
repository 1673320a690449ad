package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"timekeeper/internal/domain"
)

// parseDay reads a YYYY-MM-DD date in local time, defaulting to today
func parseDay(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	day, err := time.ParseInLocation(time.DateOnly, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return day, nil
}

func printBlocks(out io.Writer, blocks []domain.Block, timeFormat string) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTART\tEND\tDURATION\tTAG")
	for _, b := range blocks {
		end := b.End.Format(timeFormat)
		if b.Running {
			end = "running"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			b.ID, b.Start.Format(timeFormat), end, domain.FormatDuration(b.Duration()), b.TagName())
	}
	w.Flush()
}

// TodayCmd shows the blocks of a day
type TodayCmd struct {
	Date string `help:"Day to show (YYYY-MM-DD, default today)"`
}

// Run executes the today command
func (t *TodayCmd) Run(container *Container) error {
	day, err := parseDay(t.Date)
	if err != nil {
		return err
	}

	dayBlock, err := container.HistoryService.BlocksInDay(context.Background(), day)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n\n", dayBlock.Day.Weekday(), dayBlock.Day.Format(container.Settings.GetDateFormat()))
	if len(dayBlock.Blocks) == 0 {
		fmt.Println("No blocks")
	} else {
		printBlocks(os.Stdout, dayBlock.Blocks, container.Settings.GetTimeFormat())
	}
	fmt.Printf("\nTotal: %s\n", domain.FormatDuration(dayBlock.Total))
	return nil
}

// WeekCmd shows the days of a week
type WeekCmd struct {
	Date string `help:"Any day of the week to show (YYYY-MM-DD, default today)"`
}

// Run executes the week command
func (wc *WeekCmd) Run(container *Container) error {
	day, err := parseDay(wc.Date)
	if err != nil {
		return err
	}

	total, days, err := container.HistoryService.BlocksInWeek(context.Background(), day)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tDATE\tBLOCKS\tTOTAL")
	for _, d := range days {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			d.Day.Weekday().String()[:3],
			d.Day.Format(container.Settings.GetDateFormat()),
			len(d.Blocks),
			domain.FormatDuration(d.Total))
	}
	w.Flush()

	fmt.Printf("\n%s\nTotal: %s\n", strings.Repeat("-", 20), domain.FormatDuration(total))
	return nil
}
