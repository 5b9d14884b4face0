package roster

import (
	"math"
	"testing"

	"github.com/Ju21000/planing-ia-2/core/model"
)

func TestApplyPhonePercentages(t *testing.T) {
	in := []model.ScheduleEntry{
		{Person: "JULIEN", Date: "03/11/2025", Presence: "FNAC", StartTime: "09:00", EndTime: "19:00", PhoneDuty: model.PhoneDutyMorning},
		{Person: "JULIEN", Date: "04/11/2025", Presence: "FNAC", StartTime: "09:00", EndTime: "19:00", PhoneDuty: model.PhoneDutyNone},
	}
	out := ApplyPhonePercentages(in, defaultRules())

	// 4h credit over 20 worked hours.
	want := 20.0
	for _, e := range out {
		if math.Abs(e.PhonePercentage-want) > 1e-9 {
			t.Fatalf("%s %s: expected %.1f got %v", e.Person, e.Date, want, e.PhonePercentage)
		}
	}
}

func TestApplyPhonePercentagesUniformPerPerson(t *testing.T) {
	in := []model.ScheduleEntry{
		{Person: "HILAL", Date: "03/11/2025", Presence: "FNAC", StartTime: "08:00", EndTime: "12:00", PhoneDuty: model.PhoneDutyMorning},
		{Person: "HILAL", Date: "04/11/2025", Presence: "Repos"},
		{Person: "HILAL", Date: "05/11/2025", Presence: "FNAC", StartTime: "08:00", EndTime: "12:00"},
	}
	out := ApplyPhonePercentages(in, defaultRules())
	for _, e := range out[1:] {
		if e.PhonePercentage != out[0].PhonePercentage {
			t.Fatalf("percentage differs across entries of the same person: %v vs %v", out[0].PhonePercentage, e.PhonePercentage)
		}
	}
}

func TestApplyPhonePercentagesZeroWorkHours(t *testing.T) {
	in := []model.ScheduleEntry{
		{Person: "MARIE", Date: "03/11/2025", Presence: "Repos"},
		{Person: "MARIE", Date: "04/11/2025", Presence: "CFO", StartTime: "09:00", EndTime: "17:00"},
	}
	out := ApplyPhonePercentages(in, defaultRules())
	for _, e := range out {
		if e.PhonePercentage != 0 {
			t.Fatalf("expected 0 percentage without worked hours, got %v", e.PhonePercentage)
		}
	}
}
