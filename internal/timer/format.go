package timer

import (
	"fmt"
	"time"
)

// RemainingFormatted renders the remaining time as MM:SS, or HH:MM:SS once
// it reaches an hour.
func (t *Timer) RemainingFormatted() string {
	return FormatClock(t.remaining)
}

// FinishFormatted renders the local wall clock time of finishAt.
func (t *Timer) FinishFormatted() string {
	return t.finishAt.Local().Format("15:04:05")
}

// FormatClock truncates d to whole seconds. Negative durations show as 00:00.
func FormatClock(d time.Duration) string {
	total := int64(d / time.Second)
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
