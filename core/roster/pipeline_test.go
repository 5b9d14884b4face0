package roster

import (
	"testing"
	"time"

	"github.com/Ju21000/planing-ia-2/core/metrics"
	"github.com/Ju21000/planing-ia-2/core/model"
	"github.com/Ju21000/planing-ia-2/internal/eventbus"
)

type captureSink struct {
	runs        []metrics.RunEvent
	assignments []metrics.AssignmentEvent
	fairness    []metrics.FairnessEvent
}

func (c *captureSink) RecordRun(ev metrics.RunEvent) error { c.runs = append(c.runs, ev); return nil }
func (c *captureSink) RecordAssignments(evs []metrics.AssignmentEvent) error {
	c.assignments = append(c.assignments, evs...)
	return nil
}
func (c *captureSink) RecordFairness(ev metrics.FairnessEvent) error {
	c.fairness = append(c.fairness, ev)
	return nil
}

func TestProcessWeekExample(t *testing.T) {
	// The documented two-entry case: one worked Monday, one day off Tuesday.
	p, err := NewProcessor(Rules{}, nil, nil, nil)
	if err != nil {
		t.Fatalf("processor: %v", err)
	}
	in := []model.ScheduleEntry{
		{Person: "Julien", Date: "03/11/2025", Presence: "FNAC", Description: "lundi 03/11/2025 de 09:00 à 19:00", StartTime: "09:00", EndTime: "19:00"},
		{Person: "Julien", Date: "04/11/2025", Presence: "Repos", Description: "mardi 04/11/2025 - Repos"},
	}
	out, report := p.Process(in)

	if len(out) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(out))
	}
	if report.Persons != 1 || report.WeekStart != "03/11/2025" {
		t.Fatalf("unexpected report %+v", report)
	}
	for _, e := range out {
		if e.Person != "JULIEN" {
			t.Fatalf("identity not canonicalized: %s", e.Person)
		}
	}

	byDate := map[string]model.ScheduleEntry{}
	for _, e := range out {
		byDate[e.Date] = e
	}
	monday := byDate["03/11/2025"]
	if monday.MealBreak != "12:00-13:00" {
		t.Fatalf("expected JULIEN's preferred slot, got %q", monday.MealBreak)
	}
	if monday.PhoneDuty != model.PhoneDutyMorning {
		t.Fatalf("expected morning duty, got %v", monday.PhoneDuty)
	}
	tuesday := byDate["04/11/2025"]
	if tuesday.Presence != "Repos" || tuesday.MealBreak != "-" {
		t.Fatalf("unexpected Tuesday entry %+v", tuesday)
	}
	if tuesday.Description != "mardi 04/11/2025 - Repos" {
		t.Fatalf("original description must be kept, got %q", tuesday.Description)
	}

	// 4h morning credit over 10 worked hours, echoed on every row.
	for _, e := range out {
		if e.PhonePercentage != 40 {
			t.Fatalf("%s: expected 40%%, got %v", e.Date, e.PhonePercentage)
		}
	}
}

func TestProcessEmptyInput(t *testing.T) {
	p, _ := NewProcessor(Rules{}, nil, nil, nil)
	out, report := p.Process(nil)
	if len(out) != 0 {
		t.Fatalf("expected empty roster")
	}
	if report.RawEntries != 0 || report.Entries != 0 {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestProcessOnlyExcludedIdentities(t *testing.T) {
	p, _ := NewProcessor(Rules{}, nil, nil, nil)
	out, _ := p.Process([]model.ScheduleEntry{
		{Person: "CHRISTOPHE", Date: "03/11/2025", Presence: "FNAC", StartTime: "09:00", EndTime: "18:00"},
	})
	if len(out) != 0 {
		t.Fatalf("expected empty roster, got %d entries", len(out))
	}
}

func TestProcessPhoneDutyCoverage(t *testing.T) {
	p, _ := NewProcessor(Rules{}, nil, nil, nil)
	in := []model.ScheduleEntry{
		{Person: "JULIEN", Date: "03/11/2025", Presence: "FNAC", StartTime: "09:00", EndTime: "19:00"},
		{Person: "HILAL", Date: "04/11/2025", Presence: "FNAC", StartTime: "08:00", EndTime: "16:00"},
		{Person: "CORINNE", Date: "05/11/2025", Presence: "Repos"},
		{Person: "SEBASTIEN", Date: "06/11/2025", Presence: "FNAC", StartTime: "10:00", EndTime: "20:00"},
	}
	out, report := p.Process(in)
	if want := report.Persons * 7; len(out) != want {
		t.Fatalf("expected %d entries, got %d", want, len(out))
	}

	// Per-day duty caps and the no-double-slot rule.
	morning := map[string]int{}
	afternoon := map[string]int{}
	for _, e := range out {
		switch e.PhoneDuty {
		case model.PhoneDutyMorning:
			morning[e.Date]++
		case model.PhoneDutyAfternoon:
			afternoon[e.Date]++
		}
	}
	for date, n := range morning {
		if n > 2 {
			t.Fatalf("%s: %d morning duties", date, n)
		}
	}
	for date, n := range afternoon {
		if n > 2 {
			t.Fatalf("%s: %d afternoon duties", date, n)
		}
	}

	// No duty on the excluded weekday.
	for _, e := range out {
		if d, ok := model.ParseDate(e.Date); ok && d.Weekday() == time.Sunday {
			if e.PhoneDuty != model.PhoneDutyNone {
				t.Fatalf("duty assigned on Sunday %s", e.Date)
			}
		}
	}

	// Percentage uniform per person.
	pct := map[string]float64{}
	for _, e := range out {
		if prev, seen := pct[e.Person]; seen && prev != e.PhonePercentage {
			t.Fatalf("%s: percentage differs across entries", e.Person)
		}
		pct[e.Person] = e.PhonePercentage
	}
}

func TestProcessPublishesStageEventsAndMetrics(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	sub := bus.Subscribe()
	sink := &captureSink{}

	p, _ := NewProcessor(Rules{}, nil, sink, bus)
	_, report := p.Process([]model.ScheduleEntry{
		{Person: "JULIEN", Date: "03/11/2025", Presence: "FNAC", StartTime: "09:00", EndTime: "19:00"},
	})

	stages := map[string]bool{}
	for i := 0; i < 5; i++ {
		ev := <-sub
		se, ok := ev.(StageEvent)
		if !ok {
			t.Fatalf("unexpected event %T", ev)
		}
		if se.RunID != report.RunID {
			t.Fatalf("stage event carries wrong run id")
		}
		stages[se.Stage] = true
	}
	for _, name := range []string{"normalize", "meals", "phone_duties", "percentages", "padding"} {
		if !stages[name] {
			t.Fatalf("missing stage event %s", name)
		}
	}

	if len(sink.runs) != 1 {
		t.Fatalf("expected one run event, got %d", len(sink.runs))
	}
	if sink.runs[0].Entries != 7 {
		t.Fatalf("run event entries: expected 7 got %d", sink.runs[0].Entries)
	}
	if len(sink.assignments) == 0 {
		t.Fatalf("expected assignment events")
	}
	if len(sink.fairness) != 1 {
		t.Fatalf("expected one fairness event, got %d", len(sink.fairness))
	}
}

func TestNewProcessorRejectsBadRules(t *testing.T) {
	bad := Rules{MealPreferences: map[string]string{"JULIEN": "11:00-12:00"}}
	if _, err := NewProcessor(bad, nil, nil, nil); err == nil {
		t.Fatalf("expected validation error")
	}
}
