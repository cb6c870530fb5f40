package utils

import "time"

// All calendar math in the statistics engine runs on UTC days so that
// streaks and year boundaries behave the same regardless of server
// timezone.

// DayUTC truncates a timestamp to UTC midnight
func DayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthUTC truncates a timestamp to the first of its UTC month
func MonthUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// YearUTC extracts the UTC calendar year
func YearUTC(t time.Time) int {
	return t.UTC().Year()
}

// DaysBetween returns the whole-day difference between two UTC days
func DaysBetween(a, b time.Time) int {
	return int(DayUTC(b).Sub(DayUTC(a)).Hours() / 24)
}

// ParseDay parses a YYYY-MM-DD string into a UTC day
func ParseDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// FormatDay formats a timestamp as its UTC calendar day
func FormatDay(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// FormatMonth formats a timestamp as its UTC calendar month
func FormatMonth(t time.Time) string {
	return t.UTC().Format("2006-01")
}
