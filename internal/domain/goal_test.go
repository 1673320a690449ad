package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemainingGoal_States(t *testing.T) {
	tests := []struct {
		name      string
		goal      time.Duration
		elapsed   time.Duration
		kind      GoalKind
		remaining time.Duration
	}{
		{"zero goal", 0, time.Hour, GoalZero, 0},
		{"negative goal", -time.Hour, 0, GoalZero, 0},
		{"nothing done", 8 * time.Hour, 0, GoalStillNeeds, 8 * time.Hour},
		{"partly done", 8 * time.Hour, 3 * time.Hour, GoalStillNeeds, 5 * time.Hour},
		{"exactly reached", 8 * time.Hour, 8 * time.Hour, GoalReached, 0},
		{"exceeded", 8 * time.Hour, 9 * time.Hour, GoalReached, 0},
		{"negative elapsed", time.Hour, -time.Minute, GoalStillNeeds, time.Hour + time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := RemainingGoal(tt.goal, tt.elapsed)
			assert.Equal(t, tt.kind, state.Kind)
			assert.Equal(t, tt.remaining, state.Remaining)
		})
	}
}

func TestRemainingGoal_MonotonicUntilReached(t *testing.T) {
	goal := 2 * time.Hour
	previous := RemainingGoal(goal, 0)

	for elapsed := time.Minute; elapsed <= 3*time.Hour; elapsed += 7 * time.Minute {
		state := RemainingGoal(goal, elapsed)
		if elapsed >= goal {
			assert.Equal(t, GoalReached, state.Kind, "elapsed %s", elapsed)
			continue
		}
		assert.Equal(t, GoalStillNeeds, state.Kind, "elapsed %s", elapsed)
		assert.LessOrEqual(t, state.Remaining, previous.Remaining)
		previous = state
	}
}

func TestGoalState_Fraction(t *testing.T) {
	assert.Equal(t, 0.0, RemainingGoal(0, time.Hour).Fraction())
	assert.Equal(t, 1.0, RemainingGoal(time.Hour, 2*time.Hour).Fraction())
	assert.InDelta(t, 0.25, RemainingGoal(4*time.Hour, time.Hour).Fraction(), 1e-9)
}

func TestGoalState_FinishesAt(t *testing.T) {
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)

	at, ok := RemainingGoal(8*time.Hour, 6*time.Hour).FinishesAt(now, true)
	assert.True(t, ok)
	assert.Equal(t, now.Add(2*time.Hour), at)

	_, ok = RemainingGoal(8*time.Hour, 6*time.Hour).FinishesAt(now, false)
	assert.False(t, ok, "no estimate when stopped")

	_, ok = RemainingGoal(40*time.Hour, time.Hour).FinishesAt(now, true)
	assert.False(t, ok, "no estimate when far away")

	_, ok = RemainingGoal(time.Hour, 2*time.Hour).FinishesAt(now, true)
	assert.False(t, ok, "no estimate once reached")
}

func TestGoalStateDescribe(t *testing.T) {
	assert.Equal(t, "no goal", RemainingGoal(0, time.Hour).Describe())
	assert.Equal(t, "goal reached", RemainingGoal(time.Hour, time.Hour).Describe())
	assert.Equal(t, "1h 30m to go", RemainingGoal(8*time.Hour, 6*time.Hour+30*time.Minute).Describe())
}
