package domain

import "time"

// GoalKind distinguishes the three goal states
type GoalKind int

const (
	GoalZero GoalKind = iota
	GoalStillNeeds
	GoalReached
)

// finishEstimateWindow bounds how far ahead a "finishes at" estimate is shown
const finishEstimateWindow = 10 * time.Hour

// GoalState is the outcome of comparing elapsed time against a goal.
// Remaining is only meaningful when Kind is GoalStillNeeds.
type GoalState struct {
	Goal      time.Duration
	Kind      GoalKind
	Remaining time.Duration
}

// RemainingGoal compares elapsed time against a goal. A goal of zero or less
// disables goal tracking.
func RemainingGoal(goal, elapsed time.Duration) GoalState {
	switch {
	case goal <= 0:
		return GoalState{Kind: GoalZero, Goal: goal}
	case elapsed >= goal:
		return GoalState{Kind: GoalReached, Goal: goal}
	default:
		return GoalState{Kind: GoalStillNeeds, Goal: goal, Remaining: goal - elapsed}
	}
}

// Fraction returns progress towards the goal in [0, 1]
func (g GoalState) Fraction() float64 {
	switch g.Kind {
	case GoalReached:
		return 1
	case GoalStillNeeds:
		f := 1 - float64(g.Remaining)/float64(g.Goal)
		if f < 0 {
			return 0
		}
		return f
	default:
		return 0
	}
}

// FinishesAt estimates when the goal is reached if tracking continues from now.
// It returns false unless the stopwatch is running and the finish is near enough
// to be useful.
func (g GoalState) FinishesAt(now time.Time, running bool) (time.Time, bool) {
	if g.Kind != GoalStillNeeds || !running || g.Remaining >= finishEstimateWindow {
		return time.Time{}, false
	}
	return now.Add(g.Remaining), true
}

// Describe renders the state for display
func (g GoalState) Describe() string {
	switch g.Kind {
	case GoalReached:
		return "goal reached"
	case GoalStillNeeds:
		return FormatDuration(g.Remaining) + " to go"
	default:
		return "no goal"
	}
}
