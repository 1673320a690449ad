package domain

import "time"

// StartOfDay returns local midnight of t's calendar day, in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the most recent day on or before date whose
// weekday is startWeekday.
func StartOfWeek(date time.Time, startWeekday time.Weekday) time.Time {
	offset := (int(date.Weekday()) - int(startWeekday) + 7) % 7
	return StartOfDay(date).AddDate(0, 0, -offset)
}
