package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// MaxOffset bounds a believable broadcast offset. Larger or negative offsets
// come from upstream clock bugs.
const MaxOffset = 24 * time.Hour

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DatesBetween returns every calendar date from start to end inclusive.
// It returns nil when end is before start.
func DatesBetween(start, end time.Time) []string {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if to.Before(from) {
		return nil
	}
	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, FormatDate(d))
	}
	return dates
}

// Location loads an IANA zone name. Empty or unknown names resolve to UTC.
func Location(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// RecentDays returns yesterday and today as calendar days seen from loc.
// A nil loc means UTC.
func RecentDays(now time.Time, loc *time.Location) (yesterday, today time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	today = now.In(loc)
	return today.AddDate(0, 0, -1), today
}

// ParseTimestamp parses an upstream RFC3339 timestamp with or without fractional seconds.
func ParseTimestamp(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value)
}

// FormatOffset renders d as HH:MM:SS.cc. It reports false for offsets outside [0, MaxOffset].
func FormatOffset(d time.Duration) (string, bool) {
	if d < 0 || d > MaxOffset {
		return "", false
	}
	hours := d / time.Hour
	minutes := (d % time.Hour) / time.Minute
	seconds := (d % time.Minute) / time.Second
	centis := (d % time.Second) / (10 * time.Millisecond)
	return fmt.Sprintf("%02d:%02d:%02d.%02d", hours, minutes, seconds, centis), true
}

// OffsetSeconds returns d in whole seconds with the same range check as FormatOffset.
func OffsetSeconds(d time.Duration) (int, bool) {
	if d < 0 || d > MaxOffset {
		return 0, false
	}
	return int(d / time.Second), true
}

// Offset returns the formatted offset and whole seconds of at relative to anchor.
// Both are nil when the anchor is unknown or the offset is out of range.
func Offset(at time.Time, anchor *time.Time) (*string, *int) {
	if anchor == nil {
		return nil, nil
	}
	d := at.Sub(*anchor)
	formatted, ok := FormatOffset(d)
	if !ok {
		return nil, nil
	}
	secs, _ := OffsetSeconds(d)
	return &formatted, &secs
}
