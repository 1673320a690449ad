package domain

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration as "Xh Ym", or "Ym Zs" below one hour.
// Negative durations are rounding noise and display as zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	hours := int64(d / time.Hour)
	minutes := int64(d/time.Minute) % 60
	seconds := int64(d/time.Second) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}
