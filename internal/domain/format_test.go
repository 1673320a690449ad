package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		input    time.Duration
		expected string
	}{
		{0, "0m 0s"},
		{-5 * time.Second, "0m 0s"},
		{42 * time.Second, "0m 42s"},
		{12*time.Minute + 3*time.Second, "12m 3s"},
		{time.Hour, "1h 0m"},
		{9*time.Hour + 59*time.Minute + 59*time.Second, "9h 59m"},
		{26*time.Hour + 5*time.Minute, "26h 5m"},
	}

	for _, tt := range tests {
		t.Run(tt.input.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.input))
		})
	}
}
