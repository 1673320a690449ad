package domain

import "time"

// Block is a tracked interval of work time. A running block's End is refreshed
// on every observation and is not authoritative until the block is stopped.
type Block struct {
	End     time.Time
	ID      int64
	Running bool
	Start   time.Time
	Tag     *Tag
}

// Duration returns End - Start. It can be slightly negative for a block that was
// just started; callers clamp before display.
func (b Block) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// TagName returns the resolved tag name or an empty string for untagged blocks
func (b Block) TagName() string {
	if b.Tag == nil {
		return ""
	}
	return b.Tag.Name
}

// DayBlock groups the blocks started on one calendar day
type DayBlock struct {
	Blocks []Block
	Day    time.Time
	Total  time.Duration
}

// TotalDuration sums the full duration of every block
func TotalDuration(blocks []Block) time.Duration {
	var total time.Duration
	for _, b := range blocks {
		total += b.Duration()
	}
	return total
}
