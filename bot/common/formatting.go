package common

import (
	"fmt"
	"strings"
	"time"
)

// FormatBalance formats a coin amount with thousand separators
func FormatBalance(balance int64) string {
	str := fmt.Sprintf("%d", balance)

	n := len(str)
	if n <= 3 {
		return str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}

	return result.String()
}

// FormatRemaining renders a cooldown wait for display. The value is rounded
// up to the largest fitting unit so a blocked user is never told to wait
// zero time.
func FormatRemaining(d time.Duration) string {
	switch {
	case d >= time.Hour:
		return plural(ceilDiv(d, time.Hour), "hour")
	case d >= time.Minute:
		return plural(ceilDiv(d, time.Minute), "minute")
	default:
		seconds := ceilDiv(d, time.Second)
		if seconds < 1 {
			seconds = 1
		}
		return plural(seconds, "second")
	}
}

func ceilDiv(d, unit time.Duration) int64 {
	return int64((d + unit - 1) / unit)
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
