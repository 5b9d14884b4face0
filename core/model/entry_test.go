package model

import "testing"

func TestIsWorking(t *testing.T) {
	cases := []struct {
		name  string
		entry ScheduleEntry
		want  bool
	}{
		{"site shift", ScheduleEntry{Presence: "FNAC", StartTime: "09:00", EndTime: "18:00"}, true},
		{"day off", ScheduleEntry{Presence: "Repos", StartTime: "09:00", EndTime: "18:00"}, false},
		{"training", ScheduleEntry{Presence: "cfo", StartTime: "09:00", EndTime: "18:00"}, false},
		{"missing times", ScheduleEntry{Presence: "FNAC"}, false},
		{"missing end", ScheduleEntry{Presence: "FNAC", StartTime: "09:00"}, false},
	}
	for _, c := range cases {
		if got := c.entry.IsWorking("Repos", "CFO"); got != c.want {
			t.Fatalf("%s: expected %v got %v", c.name, c.want, got)
		}
	}
}

func TestOnSite(t *testing.T) {
	e := ScheduleEntry{Presence: "fnac montparnasse"}
	if !e.OnSite("FNAC") {
		t.Fatalf("expected on-site match")
	}
	if e.OnSite("AUTRE") {
		t.Fatalf("unexpected on-site match")
	}
}

func TestShiftHours(t *testing.T) {
	e := ScheduleEntry{StartTime: "10:00", EndTime: "16:30"}
	if got := e.ShiftHours(); got != 6.5 {
		t.Fatalf("expected 6.5 got %v", got)
	}
}
