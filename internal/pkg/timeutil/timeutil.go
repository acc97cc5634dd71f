package timeutil

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar days across the API.
const DateLayout = "2006-01-02"

// ResolveLocation validates an IANA zone name and returns its location.
// An empty name resolves to UTC; an unknown name is an error.
func ResolveLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", name, err)
	}
	return loc, nil
}

// LocationOrUTC resolves a zone name, falling back to UTC when it is
// empty or unknown.
func LocationOrUTC(name string) *time.Location {
	loc, err := ResolveLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DayOf truncates t to midnight of its calendar day in loc.
func DayOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// DateString formats t as its calendar day in loc.
func DateString(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// TimeOfDayOn places a wall-clock time (hour, minute, second) on the
// calendar day of t in loc.
func TimeOfDayOn(t time.Time, hour, minute, second int, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), hour, minute, second, 0, loc)
}

// DateSpine enumerates every calendar day from start to end inclusive,
// ascending. Both bounds are truncated to midnight in loc. An inverted
// range yields an empty spine.
func DateSpine(start, end time.Time, loc *time.Location) []time.Time {
	first := DayOf(start, loc)
	last := DayOf(end, loc)

	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// FormatDuration renders d as zero-padded HH:mm:ss. Durations of a day
// or more keep accumulating hours (no day component).
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
