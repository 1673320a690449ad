package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timekeeper/internal/domain"
)

func TestParseDay(t *testing.T) {
	day, err := parseDay("2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local), day)

	before := time.Now()
	day, err = parseDay("")
	require.NoError(t, err)
	assert.False(t, day.Before(before))

	_, err = parseDay("04/03/2024")
	assert.ErrorContains(t, err, `invalid date "04/03/2024"`)
}

func TestPrintBlocks(t *testing.T) {
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)
	tag := &domain.Tag{ID: 1, Name: "Focus"}
	blocks := []domain.Block{
		{ID: 1, Start: start, End: start.Add(90 * time.Minute), Tag: tag},
		{ID: 2, Start: start.Add(2 * time.Hour), End: start.Add(150 * time.Minute), Running: true},
	}

	var out bytes.Buffer
	printBlocks(&out, blocks, "15:04")

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "DURATION")
	assert.Contains(t, string(lines[1]), "09:00")
	assert.Contains(t, string(lines[1]), "10:30")
	assert.Contains(t, string(lines[1]), "Focus")
	assert.Contains(t, string(lines[2]), "running")
}
