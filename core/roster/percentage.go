package roster

import "github.com/Ju21000/planing-ia-2/core/model"

// ApplyPhonePercentages recomputes each person's phone-duty share over the
// final duty assignments and echoes it onto every entry of that person. A
// person without worked hours gets 0, never a division error. Returns a fresh
// generation of entries.
func ApplyPhonePercentages(entries []model.ScheduleEntry, rules Rules) []model.ScheduleEntry {
	out := make([]model.ScheduleEntry, len(entries))
	copy(out, entries)

	totalWork := make(map[string]float64)
	dutyHours := make(map[string]float64)
	for _, e := range out {
		if e.IsWorking(rules.DayOffMarker, rules.TrainingMarker) {
			totalWork[e.Person] += e.ShiftHours()
		}
		if e.PhoneDuty != "" && e.PhoneDuty != model.PhoneDutyNone {
			dutyHours[e.Person] += rules.DutyCreditHours
		}
	}

	for i := range out {
		total := totalWork[out[i].Person]
		if total > 0 {
			out[i].PhonePercentage = dutyHours[out[i].Person] / total * 100
		} else {
			out[i].PhonePercentage = 0
		}
	}
	return out
}
