package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Stopwatch state colors
const (
	ColorRunning Color = "2" // Green - tracking
	ColorStopped Color = "8" // Gray - stopped
)

// Goal colors
const (
	ColorGoalPending Color = "3"  // Yellow - still needs time
	ColorGoalReached Color = "46" // Bright green
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorWarning   Color = "214" // Orange
)
