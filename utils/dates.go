package utils

import (
	"strings"
	"time"
)

// dayLayout is the calendar-day key used throughout the food log.
const dayLayout = "2006-01-02"

// DayKey formats t as a local calendar day, e.g. "2025-03-14".
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// DatePart strips any time portion from a stored date string, keeping the
// text before the first 'T'.
func DatePart(date string) string {
	if i := strings.IndexByte(date, 'T'); i >= 0 {
		return date[:i]
	}
	return date
}

// DayLabel is the short weekday name for t, e.g. "Mon".
func DayLabel(t time.Time) string {
	return t.Format("Mon")
}
