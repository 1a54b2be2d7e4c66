// Package timeutil provides calendar-date utilities for the analyzer.
// Age is always derived from a birth date against an explicitly passed
// evaluation date, never read from the system clock inside core logic.
// No external dependencies - uses only standard library.
package timeutil

import "time"

// Common date formats.
const (
	// FormatDate is the standard date format (YYYY-MM-DD).
	FormatDate = "2006-01-02"
	// FormatRussianDate is the Russian date format (DD.MM.YYYY).
	FormatRussianDate = "02.01.2006"
)

// Date creates a UTC time with the given date at midnight.
func Date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// FullYearsBetween calculates the number of full calendar years elapsed
// from the 'from' date to the 'to' date. The year counter increments only
// once the anniversary day has been reached, so a birthday later in the
// year has not happened yet. A Feb 29 anniversary counts on Mar 1 in
// non-leap years, matching civil-age convention.
func FullYearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	anniversary := from.AddDate(years, 0, 0)
	if anniversary.After(to) {
		years--
	}
	return years
}

// ParseDate parses a date string in YYYY-MM-DD format as UTC midnight.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(FormatDate, value)
}

// FormatDateStr formats a time as a date string (YYYY-MM-DD).
func FormatDateStr(t time.Time) string {
	return t.Format(FormatDate)
}

// IsSameDay checks if two times fall on the same calendar day.
func IsSameDay(t1, t2 time.Time) bool {
	return t1.Year() == t2.Year() && t1.YearDay() == t2.YearDay()
}

// DaysBetween calculates the number of days between two times.
func DaysBetween(t1, t2 time.Time) int {
	d1 := Date(t1.Year(), int(t1.Month()), t1.Day())
	d2 := Date(t2.Year(), int(t2.Month()), t2.Day())
	days := int(d2.Sub(d1).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days
}
