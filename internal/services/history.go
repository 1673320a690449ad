package services

import (
	"context"
	"fmt"
	"time"

	"timekeeper/internal/domain"
	"timekeeper/internal/logging"
	"timekeeper/internal/ports"
)

// daysPerWeek is the number of DayBlocks in a week view
const daysPerWeek = 7

// HistoryService derives day and week summaries and goal progress
type HistoryService struct {
	blocks   ports.BlockReader
	now      func() time.Time
	settings HistorySettings
}

// NewHistoryService creates a new HistoryService. A nil clock uses time.Now.
func NewHistoryService(blocks ports.BlockReader, settings HistorySettings, now func() time.Time) *HistoryService {
	if now == nil {
		now = time.Now
	}
	return &HistoryService{
		blocks:   blocks,
		now:      now,
		settings: settings,
	}
}

// Settings returns the settings the service aggregates with
func (s *HistoryService) Settings() HistorySettings {
	return s.settings
}

// BlocksInDay returns the blocks started in [midnight, next midnight) of day and
// the sum of their full durations. A running block is measured up to now.
func (s *HistoryService) BlocksInDay(ctx context.Context, day time.Time) (domain.DayBlock, error) {
	from := domain.StartOfDay(day)
	to := from.AddDate(0, 0, 1)

	blocks, err := s.blocks.InInterval(ctx, from, to)
	if err != nil {
		logging.Logger.Error("Failed to load blocks of day", "day", from, "error", err)
		return domain.DayBlock{Day: from}, fmt.Errorf("failed to get blocks of %s: %w", from.Format(time.DateOnly), err)
	}

	s.liven(blocks)
	return domain.DayBlock{
		Blocks: blocks,
		Day:    from,
		Total:  domain.TotalDuration(blocks),
	}, nil
}

// BlocksInWeek returns the seven days starting at the start of day's week and
// their grand total
func (s *HistoryService) BlocksInWeek(ctx context.Context, day time.Time) (time.Duration, []domain.DayBlock, error) {
	start := domain.StartOfWeek(day, s.settings.StartOfWeek)

	var total time.Duration
	days := make([]domain.DayBlock, 0, daysPerWeek)
	for i := 0; i < daysPerWeek; i++ {
		dayBlock, err := s.BlocksInDay(ctx, start.AddDate(0, 0, i))
		if err != nil {
			return 0, nil, err
		}
		total += dayBlock.Total
		days = append(days, dayBlock)
	}
	return total, days, nil
}

// DailyGoal compares today's total against the daily goal
func (s *HistoryService) DailyGoal(ctx context.Context) (domain.GoalState, error) {
	today, err := s.BlocksInDay(ctx, s.now())
	if err != nil {
		return domain.GoalState{}, err
	}
	return domain.RemainingGoal(s.settings.DailyGoal, today.Total), nil
}

// WeeklyGoal compares the current week's total against the weekly goal
func (s *HistoryService) WeeklyGoal(ctx context.Context) (domain.GoalState, error) {
	total, _, err := s.BlocksInWeek(ctx, s.now())
	if err != nil {
		return domain.GoalState{}, err
	}
	return domain.RemainingGoal(s.settings.WeeklyGoal, total), nil
}

// TotalTime sums every stored block, measuring the running one up to now
func (s *HistoryService) TotalTime(ctx context.Context) (time.Duration, error) {
	total, err := s.blocks.TotalTime(ctx, s.now())
	if err != nil {
		logging.Logger.Error("Failed to compute total time", "error", err)
		return 0, fmt.Errorf("failed to get total time: %w", err)
	}
	return total, nil
}

// Overview gathers the running block, the day and week of day and both goals.
// Goals are always measured against the current day and week.
func (s *HistoryService) Overview(ctx context.Context, day time.Time) (*Overview, error) {
	current, err := s.blocks.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current block: %w", err)
	}
	if current != nil {
		current.End = s.now()
	}

	today, err := s.BlocksInDay(ctx, day)
	if err != nil {
		return nil, err
	}

	weekTotal, week, err := s.BlocksInWeek(ctx, day)
	if err != nil {
		return nil, err
	}

	daily, err := s.DailyGoal(ctx)
	if err != nil {
		return nil, err
	}
	weekly, err := s.WeeklyGoal(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Current:    current,
		DailyGoal:  daily,
		Today:      today,
		Week:       week,
		WeekTotal:  weekTotal,
		WeeklyGoal: weekly,
	}, nil
}

// liven measures running blocks up to now, since their stored end is advisory
func (s *HistoryService) liven(blocks []domain.Block) {
	now := s.now()
	for i := range blocks {
		if blocks[i].Running {
			blocks[i].End = now
		}
	}
}
