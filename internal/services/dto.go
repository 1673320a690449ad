package services

import (
	"time"

	"timekeeper/internal/domain"
)

// HistorySettings are the externally supplied inputs of the history views
type HistorySettings struct {
	DailyGoal   time.Duration
	StartOfWeek time.Weekday
	WeeklyGoal  time.Duration
}

// Overview is everything the dashboard and status command show at once
type Overview struct {
	Current    *domain.Block
	DailyGoal  domain.GoalState
	Today      domain.DayBlock
	Week       []domain.DayBlock
	WeekTotal  time.Duration
	WeeklyGoal domain.GoalState
}

// RetagParams selects the new tag of a block. Clear removes the tag.
type RetagParams struct {
	BlockID int64
	Clear   bool
	TagName string
}
