package util

import "time"

// Period is a half-open time window [Start, End).
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Label returns the short month name of the window's start, e.g. "Jan".
func (p Period) Label() string {
	return p.Start.Format("Jan")
}

// StartOfMonth returns midnight UTC on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// StartOfYear returns midnight UTC on January 1st of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
}

// CurrentMonth returns the month window containing now.
func CurrentMonth(now time.Time) Period {
	start := StartOfMonth(now)
	return Period{Start: start, End: start.AddDate(0, 1, 0)}
}

// PreviousMonth returns the month window immediately before the one
// containing now.
func PreviousMonth(now time.Time) Period {
	end := StartOfMonth(now)
	return Period{Start: end.AddDate(0, -1, 0), End: end}
}

// TrailingMonth returns the month window monthsAgo months before the one
// containing now. TrailingMonth(now, 0) == CurrentMonth(now).
func TrailingMonth(now time.Time, monthsAgo int) Period {
	start := StartOfMonth(now).AddDate(0, -monthsAgo, 0)
	return Period{Start: start, End: start.AddDate(0, 1, 0)}
}

// YearToDate returns the window from January 1st of now's year through the
// end of the current month.
func YearToDate(now time.Time) Period {
	return Period{Start: StartOfYear(now), End: CurrentMonth(now).End}
}
