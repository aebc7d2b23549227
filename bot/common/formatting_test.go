package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBalance(t *testing.T) {
	tests := []struct {
		name     string
		balance  int64
		expected string
	}{
		{"zero", 0, "0"},
		{"under a thousand", 950, "950"},
		{"one thousand", 1000, "1,000"},
		{"starting balance", 100, "100"},
		{"large balance", 1234567, "1,234,567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBalance(tt.balance))
		})
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{"rounds partial hours up", 23*time.Hour + time.Second, "24 hours"},
		{"exact hours", 2 * time.Hour, "2 hours"},
		{"single hour", time.Hour, "1 hour"},
		{"rounds partial minutes up", 90 * time.Second, "2 minutes"},
		{"exact minute", time.Minute, "1 minute"},
		{"seconds", 50 * time.Second, "50 seconds"},
		{"rounds partial seconds up", 500 * time.Millisecond, "1 second"},
		{"never shows zero", 0, "1 second"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRemaining(tt.d))
		})
	}
}
