package model

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the textual date form used across the roster, DD/MM/YYYY.
const DateLayout = "02/01/2006"

// HourLayout is the textual time-of-day form, HH:mm.
const HourLayout = "15:04"

var frenchDays = [...]string{
	time.Sunday:    "dimanche",
	time.Monday:    "lundi",
	time.Tuesday:   "mardi",
	time.Wednesday: "mercredi",
	time.Thursday:  "jeudi",
	time.Friday:    "vendredi",
	time.Saturday:  "samedi",
}

// ParseDate parses a DD/MM/YYYY string. The boolean is false when the string
// is not a real calendar date.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a date as DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekStart returns the Monday on or before the given date. A Sunday maps to
// the Monday six days earlier.
func WeekStart(t time.Time) time.Time {
	diff := int(time.Monday - t.Weekday())
	if t.Weekday() == time.Sunday {
		diff = -6
	}
	return t.AddDate(0, 0, diff)
}

// FrenchDayName returns the lower-case French weekday name.
func FrenchDayName(t time.Time) string {
	return frenchDays[t.Weekday()]
}

// DurationHours computes the elapsed hours between two HH:mm strings. Any
// malformed or missing component yields 0.
func DurationHours(start, end string) float64 {
	startMin, ok := minutesOfDay(start)
	if !ok {
		return 0
	}
	endMin, ok := minutesOfDay(end)
	if !ok {
		return 0
	}
	return float64(endMin-startMin) / 60
}

// HourOf extracts the hour component of an HH:mm string. The boolean is false
// when the hour is not numeric.
func HourOf(s string) (int, bool) {
	h, _, ok := splitClock(s)
	if !ok {
		return 0, false
	}
	return h, true
}

func minutesOfDay(s string) (int, bool) {
	h, m, ok := splitClock(s)
	if !ok {
		return 0, false
	}
	return h*60 + m, true
}

func splitClock(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}
