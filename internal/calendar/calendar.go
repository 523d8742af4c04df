// Package calendar provides pure date-range math for the budgeting engine.
// All functions are total: zero or otherwise odd times flow through the
// arithmetic and comparisons without panicking.
package calendar

import "time"

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// StartOfWeek returns midnight of the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	// Sunday is weekday 0, so it sits 6 days after the Monday that starts
	// its week.
	back := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -back)
}

// EndOfWeek returns the last nanosecond of the Sunday of t's week.
func EndOfWeek(t time.Time) time.Time {
	return EndOfDay(StartOfWeek(t).AddDate(0, 0, 6))
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return EndOfDay(StartOfMonth(t).AddDate(0, 1, -1))
}

// MonthsBack returns the start of the month n months before t's month.
// MonthsBack(t, 0) is StartOfMonth(t).
func MonthsBack(t time.Time, n int) time.Time {
	return StartOfMonth(t).AddDate(0, -n, 0)
}

// InRange reports whether from <= t <= to, inclusive at both ends.
func InRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// MonthLabel renders t's month as a short label like "Sep 25".
func MonthLabel(t time.Time) string {
	return t.Format("Jan 06")
}
