package timeutil

import (
	"reflect"
	"testing"
	"time"
	_ "time/tzdata"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 0, 0, loc)
	if got := FormatDate(value); got != "2024-01-02" {
		t.Fatalf("expected formatted date, got %s", got)
	}
}

func TestDatesBetweenInclusive(t *testing.T) {
	start := time.Date(2024, 2, 28, 15, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)

	got := DatesBetween(start, end)
	want := []string{"2024-02-28", "2024-02-29", "2024-03-01"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v got %v", want, got)
	}
}

func TestDatesBetweenReversedIsEmpty(t *testing.T) {
	start := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := DatesBetween(start, end); len(got) != 0 {
		t.Fatalf("expected no dates, got %v", got)
	}
}

func TestParseTimestampAcceptsFractionalSeconds(t *testing.T) {
	withFrac, err := ParseTimestamp("2024-04-01T20:10:05.250Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withFrac.Nanosecond() != 250_000_000 {
		t.Fatalf("expected fractional seconds, got %d", withFrac.Nanosecond())
	}
	if _, err := ParseTimestamp("2024-04-01T20:10:05Z"); err != nil {
		t.Fatalf("expected whole-second timestamp to parse, got %v", err)
	}
}

func TestFormatOffset(t *testing.T) {
	cases := []struct {
		name string
		in   time.Duration
		want string
		ok   bool
	}{
		{"zero", 0, "00:00:00.00", true},
		{"mixed", time.Hour + 2*time.Minute + 3*time.Second + 450*time.Millisecond, "01:02:03.45", true},
		{"small fraction padded", 5*time.Second + 50*time.Millisecond, "00:00:05.05", true},
		{"full day", MaxOffset, "24:00:00.00", true},
		{"over a day", MaxOffset + time.Second, "", false},
		{"negative", -time.Second, "", false},
	}
	for _, tc := range cases {
		got, ok := FormatOffset(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("%s: expected (%q,%v) got (%q,%v)", tc.name, tc.want, tc.ok, got, ok)
		}
	}
}

func TestOffsetNilWithoutAnchor(t *testing.T) {
	formatted, secs := Offset(time.Now(), nil)
	if formatted != nil || secs != nil {
		t.Fatalf("expected nil offsets without an anchor")
	}
}

func TestOffsetWithAnchor(t *testing.T) {
	anchor := time.Date(2024, 4, 1, 19, 0, 0, 0, time.UTC)
	at := anchor.Add(90*time.Second + 500*time.Millisecond)

	formatted, secs := Offset(at, &anchor)
	if formatted == nil || *formatted != "00:01:30.50" {
		t.Fatalf("unexpected formatted offset %v", formatted)
	}
	if secs == nil || *secs != 90 {
		t.Fatalf("unexpected seconds %v", secs)
	}

	before := anchor.Add(-time.Minute)
	if f, s := Offset(before, &anchor); f != nil || s != nil {
		t.Fatalf("expected negative offset to be dropped")
	}
}

func TestOffsetSecondsRange(t *testing.T) {
	if got, ok := OffsetSeconds(90*time.Second + 900*time.Millisecond); !ok || got != 90 {
		t.Fatalf("expected 90 seconds, got %d (ok=%v)", got, ok)
	}
	if _, ok := OffsetSeconds(-time.Second); ok {
		t.Fatal("expected negative offset to be rejected")
	}
	if _, ok := OffsetSeconds(MaxOffset + time.Second); ok {
		t.Fatal("expected offset beyond a day to be rejected")
	}
}

func TestLocationFallsBackToUTC(t *testing.T) {
	for _, tz := range []string{"", "Not/AZone"} {
		if loc := Location(tz); loc != time.UTC {
			t.Fatalf("Location(%q) = %v, want UTC", tz, loc)
		}
	}
	if loc := Location("America/New_York"); loc.String() != "America/New_York" {
		t.Fatalf("expected New York zone, got %v", loc)
	}
}

func TestRecentDaysUsesLocalCalendar(t *testing.T) {
	// 03:00 UTC on the 2nd is still the 1st on the US west coast.
	now := time.Date(2024, 4, 2, 3, 0, 0, 0, time.UTC)
	la := Location("America/Los_Angeles")

	yesterday, today := RecentDays(now, la)
	if FormatDate(today) != "2024-04-01" || FormatDate(yesterday) != "2024-03-31" {
		t.Fatalf("unexpected window %s..%s", FormatDate(yesterday), FormatDate(today))
	}

	yesterday, today = RecentDays(now, nil)
	if FormatDate(today) != "2024-04-02" || FormatDate(yesterday) != "2024-04-01" {
		t.Fatalf("unexpected UTC window %s..%s", FormatDate(yesterday), FormatDate(today))
	}
}
