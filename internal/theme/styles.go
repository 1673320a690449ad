package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	SelectedTabStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHighlight).
				Underline(true)

	TabStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Stopwatch styles
var (
	RunningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRunning)

	StoppedStyle = lipgloss.NewStyle().
			Foreground(ColorStopped)

	ElapsedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)
)

// Goal styles
var (
	GoalPendingStyle = lipgloss.NewStyle().
				Foreground(ColorGoalPending)

	GoalReachedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorGoalReached)
)

// Status line styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Table styles
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSubtle)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorNormal).
			PaddingRight(2)

	TodayRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight).
			PaddingRight(2)
)
