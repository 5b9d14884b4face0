package roster

import (
	"fmt"
	"sort"

	"github.com/Ju21000/planing-ia-2/core/model"
)

// PadWeek guarantees one entry per (person, day) over the 7-day Monday-start
// window anchored on the first entry's date, synthesizing day-off rows for the
// gaps, then sorts by person and chronological date. If the anchor date does
// not parse, the input passes through unchanged.
func PadWeek(entries []model.ScheduleEntry, rules Rules) []model.ScheduleEntry {
	if len(entries) == 0 {
		return entries
	}

	anchor, ok := model.ParseDate(entries[0].Date)
	if !ok {
		return entries
	}

	var persons []string
	seen := make(map[string]struct{})
	for _, e := range entries {
		if _, dup := seen[e.Person]; !dup {
			seen[e.Person] = struct{}{}
			persons = append(persons, e.Person)
		}
	}

	monday := model.WeekStart(anchor)
	week := make([]string, 7)
	for i := range week {
		week[i] = model.FormatDate(monday.AddDate(0, 0, i))
	}

	// Last-seen entry wins on duplicate (person, date) keys.
	byKey := make(map[string]model.ScheduleEntry, len(entries))
	for _, e := range entries {
		byKey[e.Key()] = e
	}

	padded := make([]model.ScheduleEntry, 0, len(persons)*len(week))
	for _, person := range persons {
		for _, date := range week {
			if e, exists := byKey[person+"-"+date]; exists {
				if e.MealBreak == "" {
					e.MealBreak = "-"
				}
				padded = append(padded, e)
				continue
			}
			padded = append(padded, dayOffEntry(person, date, week[0], byKey, rules))
		}
	}

	sort.SliceStable(padded, func(i, j int) bool {
		if padded[i].Person != padded[j].Person {
			return padded[i].Person < padded[j].Person
		}
		di, _ := model.ParseDate(padded[i].Date)
		dj, _ := model.ParseDate(padded[j].Date)
		return di.Before(dj)
	})
	return padded
}

// dayOffEntry synthesizes the placeholder row for a missing (person, date)
// pair. The percentage is borrowed from the person's entry on the window's
// first day, defaulting to 0.
func dayOffEntry(person, date, firstDate string, byKey map[string]model.ScheduleEntry, rules Rules) model.ScheduleEntry {
	dayName := ""
	if d, ok := model.ParseDate(date); ok {
		dayName = model.FrenchDayName(d)
	}
	pct := 0.0
	if first, ok := byKey[person+"-"+firstDate]; ok {
		pct = first.PhonePercentage
	}
	return model.ScheduleEntry{
		Person:          person,
		Date:            date,
		Presence:        rules.DayOffMarker,
		Description:     fmt.Sprintf("%s %s - %s", dayName, date, rules.DayOffMarker),
		MealBreak:       "-",
		PhoneDuty:       model.PhoneDutyNone,
		PhonePercentage: pct,
	}
}
