package utils

import (
	"strconv"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// FormatLongDate renders a date the way booking emails show it,
// e.g. "Monday, January 2".
func FormatLongDate(t time.Time) string {
	return t.Format("Monday, January 2")
}

// FormatTimeRange renders "09:00 - 13:00" from two clock times.
func FormatTimeRange(start, end time.Time) string {
	return start.Format("15:04") + " - " + end.Format("15:04")
}
