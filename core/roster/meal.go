package roster

import (
	"sort"

	"github.com/Ju21000/planing-ia-2/core/model"
)

// AssignMeals fills MealBreak for every working entry, day by day. Shifts at
// or under the short-shift threshold get the no-break marker; the rest are
// spread over the rotation slots, preferences first, then greedily onto the
// least-filled slot. Returns a fresh generation of entries.
func AssignMeals(entries []model.ScheduleEntry, rules Rules) []model.ScheduleEntry {
	out := make([]model.ScheduleEntry, len(entries))
	copy(out, entries)

	for _, day := range groupByDate(out) {
		assignMealsForDay(out, day, rules)
	}
	return out
}

// groupByDate buckets entry indices by their raw date string, preserving input
// order inside each bucket. An unparsable date still groups by its raw text.
func groupByDate(entries []model.ScheduleEntry) map[string][]int {
	byDate := make(map[string][]int)
	for i, e := range entries {
		byDate[e.Date] = append(byDate[e.Date], i)
	}
	return byDate
}

func assignMealsForDay(entries []model.ScheduleEntry, day []int, rules Rules) {
	var working []int
	for _, i := range day {
		if entries[i].IsWorking(rules.DayOffMarker, rules.TrainingMarker) {
			working = append(working, i)
		}
	}
	if len(working) == 0 {
		return
	}

	// Short-shift exemption. A malformed time pair degrades to duration 0 and
	// lands here as well.
	var needMeal []int
	for _, i := range working {
		if entries[i].ShiftHours() <= rules.ShortShiftHours {
			entries[i].MealBreak = rules.NoBreakMarker
			continue
		}
		needMeal = append(needMeal, i)
	}
	if len(needMeal) == 0 {
		return
	}

	occupancy := make(map[string]int, len(rules.MealSlots))
	for _, slot := range rules.MealSlots {
		occupancy[slot] = 0
	}

	// Preference pass. Map iteration order is randomized, so preference keys
	// are scanned in sorted order to keep substring matching deterministic.
	prefNames := make([]string, 0, len(rules.MealPreferences))
	for name := range rules.MealPreferences {
		prefNames = append(prefNames, name)
	}
	sort.Strings(prefNames)

	var unassigned []int
	for _, i := range needMeal {
		if name, ok := matchName(entries[i].Person, prefNames); ok {
			slot := rules.MealPreferences[name]
			entries[i].MealBreak = slot
			occupancy[slot]++
			continue
		}
		unassigned = append(unassigned, i)
	}

	// Balancing pass: strictly sequential so each assignment shifts the next
	// choice. Ties resolve in slot declaration order.
	for _, i := range unassigned {
		slot := leastFilledSlot(rules.MealSlots, occupancy)
		entries[i].MealBreak = slot
		occupancy[slot]++
	}
}

func leastFilledSlot(slots []string, occupancy map[string]int) string {
	best := slots[0]
	for _, s := range slots[1:] {
		if occupancy[s] < occupancy[best] {
			best = s
		}
	}
	return best
}
