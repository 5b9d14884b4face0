package model

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("03/11/2025")
	if !ok {
		t.Fatalf("expected valid date")
	}
	if d.Day() != 3 || d.Month() != time.November || d.Year() != 2025 {
		t.Fatalf("unexpected date %v", d)
	}
	if d.Weekday() != time.Monday {
		t.Fatalf("03/11/2025 should be a Monday, got %v", d.Weekday())
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, s := range []string{"", "2025-11-03", "31/02/2025", "99/99/9999", "not a date"} {
		if _, ok := ParseDate(s); ok {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	d, _ := ParseDate("09/03/2026")
	if got := FormatDate(d); got != "09/03/2026" {
		t.Fatalf("expected 09/03/2026 got %s", got)
	}
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"03/11/2025", "03/11/2025"}, // Monday anchors to itself
		{"05/11/2025", "03/11/2025"}, // Wednesday
		{"08/11/2025", "03/11/2025"}, // Saturday
		{"09/11/2025", "03/11/2025"}, // Sunday goes back six days
	}
	for _, c := range cases {
		d, ok := ParseDate(c.in)
		if !ok {
			t.Fatalf("parse %s", c.in)
		}
		if got := FormatDate(WeekStart(d)); got != c.want {
			t.Fatalf("week start of %s: expected %s got %s", c.in, c.want, got)
		}
	}
}

func TestDurationHours(t *testing.T) {
	cases := []struct {
		start, end string
		want       float64
	}{
		{"09:00", "19:00", 10},
		{"09:30", "12:00", 2.5},
		{"14:00", "14:00", 0},
		{"", "18:00", 0},
		{"09:00", "", 0},
		{"9h00", "18:00", 0},
		{"aa:bb", "18:00", 0},
	}
	for _, c := range cases {
		if got := DurationHours(c.start, c.end); got != c.want {
			t.Fatalf("duration %s-%s: expected %v got %v", c.start, c.end, c.want, got)
		}
	}
}

func TestHourOf(t *testing.T) {
	if h, ok := HourOf("09:30"); !ok || h != 9 {
		t.Fatalf("expected 9, got %d ok=%v", h, ok)
	}
	if _, ok := HourOf("morning"); ok {
		t.Fatalf("expected malformed hour to be rejected")
	}
}

func TestFrenchDayName(t *testing.T) {
	d, _ := ParseDate("04/11/2025")
	if got := FrenchDayName(d); got != "mardi" {
		t.Fatalf("expected mardi got %s", got)
	}
}
