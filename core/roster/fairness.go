package roster

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/Ju21000/planing-ia-2/core/model"
)

// FairnessReport summarizes how evenly phone duty is spread over the people
// with workload history: per-person duty-credit ratios and their statistical
// dispersion.
type FairnessReport struct {
	Persons int
	Ratios  map[string]float64
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
}

// Fairness computes the duty-ratio spread over the processed entries. People
// without worked hours carry no ratio and are left out of the report.
func Fairness(entries []model.ScheduleEntry, rules Rules) FairnessReport {
	totalWork := make(map[string]float64)
	dutyHours := make(map[string]float64)
	for _, e := range entries {
		if e.IsWorking(rules.DayOffMarker, rules.TrainingMarker) {
			totalWork[e.Person] += e.ShiftHours()
		}
		if e.PhoneDuty == model.PhoneDutyMorning || e.PhoneDuty == model.PhoneDutyAfternoon {
			dutyHours[e.Person] += rules.DutyCreditHours
		}
	}

	report := FairnessReport{Ratios: make(map[string]float64)}
	persons := make([]string, 0, len(totalWork))
	for person, total := range totalWork {
		if total <= 0 {
			continue
		}
		report.Ratios[person] = dutyHours[person] / total
		persons = append(persons, person)
	}
	report.Persons = len(persons)
	if report.Persons == 0 {
		return report
	}

	sort.Strings(persons)
	values := make([]float64, len(persons))
	for i, person := range persons {
		values[i] = report.Ratios[person]
	}

	report.Mean = stat.Mean(values, nil)
	if len(values) > 1 {
		report.StdDev = stat.StdDev(values, nil)
	}
	report.Min = values[0]
	report.Max = values[0]
	for _, v := range values[1:] {
		if v < report.Min {
			report.Min = v
		}
		if v > report.Max {
			report.Max = v
		}
	}
	return report
}
