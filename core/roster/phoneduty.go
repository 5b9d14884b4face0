package roster

import (
	"math"
	"sort"
	"time"

	"github.com/Ju21000/planing-ia-2/core/model"
)

// ratioUnworked sorts a person with no workload history after every other
// candidate. Kept as an explicit sentinel instead of dividing by zero.
const ratioUnworked = math.MaxFloat64

// dutyStats accumulates per-person workload over one pipeline invocation.
type dutyStats struct {
	totalWorkHours map[string]float64
	phoneDutyHours map[string]float64
}

func newDutyStats(entries []model.ScheduleEntry, rules Rules) *dutyStats {
	s := &dutyStats{
		totalWorkHours: make(map[string]float64),
		phoneDutyHours: make(map[string]float64),
	}
	for _, e := range entries {
		if e.IsWorking(rules.DayOffMarker, rules.TrainingMarker) {
			s.totalWorkHours[e.Person] += e.ShiftHours()
		}
	}
	return s
}

// ratio is the fairness metric: cumulative duty credit over cumulative worked
// hours. Lower means more overdue for a duty slot.
func (s *dutyStats) ratio(person string) float64 {
	total := s.totalWorkHours[person]
	if total <= 0 {
		return ratioUnworked
	}
	return s.phoneDutyHours[person] / total
}

func (s *dutyStats) credit(person string, hours float64) {
	s.phoneDutyHours[person] += hours
}

// AssignPhoneDuties fills PhoneDuty across the whole run. Days are processed
// in ascending date order so the fairness ratio carries history from earlier
// days; the excluded weekday is skipped entirely. Every entry starts over at
// PhoneDutyNone. Returns a fresh generation of entries.
func AssignPhoneDuties(entries []model.ScheduleEntry, rules Rules) []model.ScheduleEntry {
	out := make([]model.ScheduleEntry, len(entries))
	copy(out, entries)
	for i := range out {
		out[i].PhoneDuty = model.PhoneDutyNone
	}

	stats := newDutyStats(out, rules)
	excludedDay, _ := parseWeekday(rules.ExcludedWeekday)

	byDate := groupByDate(out)
	for _, date := range sortedDates(byDate) {
		day, parsable := model.ParseDate(date)
		if parsable && day.Weekday() == excludedDay {
			continue
		}
		assignDutiesForDay(out, byDate[date], day, parsable, stats, rules)
	}
	return out
}

// sortedDates orders the group keys chronologically. Unparsable dates sort
// first, on their zero time, matching their zero anchor everywhere else.
func sortedDates(byDate map[string][]int) []string {
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		ti, _ := model.ParseDate(dates[i])
		tj, _ := model.ParseDate(dates[j])
		if ti.Equal(tj) {
			return dates[i] < dates[j]
		}
		return ti.Before(tj)
	})
	return dates
}

func assignDutiesForDay(entries []model.ScheduleEntry, day []int, date time.Time, parsable bool, stats *dutyStats, rules Rules) {
	var working []int
	for _, i := range day {
		if entries[i].IsWorking(rules.DayOffMarker, rules.TrainingMarker) {
			working = append(working, i)
		}
	}
	if len(working) == 0 {
		return
	}

	eligible := func(i int) bool {
		if _, ok := matchName(entries[i].Person, rules.PhoneDutyNames); !ok {
			return false
		}
		// Standing exception: a listed identity sits out one weekday.
		if parsable {
			for name, dayName := range rules.PhoneDutyExceptions {
				exDay, ok := parseWeekday(dayName)
				if !ok {
					continue
				}
				if _, match := matchName(entries[i].Person, []string{name}); match && date.Weekday() == exDay {
					return false
				}
			}
		}
		return true
	}

	// Morning: eligible entries starting before the morning bound.
	var morning []int
	for _, i := range working {
		if !eligible(i) {
			continue
		}
		if h, ok := model.HourOf(entries[i].StartTime); ok && h < rules.MorningStartBefore {
			morning = append(morning, i)
		}
	}
	morningAssigned := takeFairest(entries, morning, stats, rules.SlotsPerPeriod)
	for _, i := range morningAssigned {
		entries[i].PhoneDuty = model.PhoneDutyMorning
		stats.credit(entries[i].Person, rules.DutyCreditHours)
	}

	onMorningDuty := make(map[string]struct{}, len(morningAssigned))
	for _, i := range morningAssigned {
		onMorningDuty[entries[i].Person] = struct{}{}
	}

	// Afternoon: eligible entries ending at or after the afternoon bound,
	// never someone already covering the morning.
	var afternoon []int
	for _, i := range working {
		if !eligible(i) {
			continue
		}
		if _, taken := onMorningDuty[entries[i].Person]; taken {
			continue
		}
		if h, ok := model.HourOf(entries[i].EndTime); ok && h >= rules.AfternoonEndFrom {
			afternoon = append(afternoon, i)
		}
	}
	for _, i := range takeFairest(entries, afternoon, stats, rules.SlotsPerPeriod) {
		entries[i].PhoneDuty = model.PhoneDutyAfternoon
		stats.credit(entries[i].Person, rules.DutyCreditHours)
	}
}

// takeFairest sorts candidates ascending by current fairness ratio and keeps
// at most n. The sort is stable so equal ratios keep input order.
func takeFairest(entries []model.ScheduleEntry, candidates []int, stats *dutyStats, n int) []int {
	sorted := make([]int, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(a, b int) bool {
		return stats.ratio(entries[sorted[a]].Person) < stats.ratio(entries[sorted[b]].Person)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
