package model

import "strings"

// PhoneDuty identifies the half-day phone coverage slot assigned to an entry.
type PhoneDuty string

const (
	// PhoneDutyNone marks an entry without phone coverage.
	PhoneDutyNone PhoneDuty = "aucun"
	// PhoneDutyMorning marks a morning coverage slot.
	PhoneDutyMorning PhoneDuty = "matin"
	// PhoneDutyAfternoon marks an afternoon coverage slot.
	PhoneDutyAfternoon PhoneDuty = "après-midi"
)

// ScheduleEntry is one person/day row of the weekly roster. Raw entries come
// from the document extraction service; the roster pipeline fills MealBreak,
// PhoneDuty and PhonePercentage.
type ScheduleEntry struct {
	// Person is the identity key, canonicalized to upper case by the pipeline.
	Person string `json:"nom"`
	// Date is the calendar day in DD/MM/YYYY form.
	Date string `json:"date"`
	// Presence classifies the day: a site code, the day-off marker or the
	// training marker.
	Presence string `json:"presence"`
	// Description carries the original source transcription verbatim.
	Description string `json:"description"`
	// StartTime and EndTime are HH:mm strings; both empty means no shift.
	StartTime string `json:"heureDebut"`
	EndTime   string `json:"heureFin"`
	// MealBreak is the assigned lunch slot, the no-break marker or "-".
	MealBreak string `json:"heureRepas,omitempty"`
	// PhoneDuty is the assigned coverage slot.
	PhoneDuty PhoneDuty `json:"enTelephonie,omitempty"`
	// PhonePercentage is the person's phone time share, identical on every
	// entry of the same person.
	PhonePercentage float64 `json:"pourcentageTel"`
}

// HasShift reports whether both start and end times are set.
func (e ScheduleEntry) HasShift() bool {
	return e.StartTime != "" && e.EndTime != ""
}

// ShiftHours returns the shift duration in hours. Malformed or missing times
// yield 0.
func (e ScheduleEntry) ShiftHours() float64 {
	return DurationHours(e.StartTime, e.EndTime)
}

// Key returns the person/date lookup key used for padding and deduplication.
func (e ScheduleEntry) Key() string {
	return e.Person + "-" + e.Date
}

// IsWorking reports whether the entry is a worked shift: neither the day-off
// marker nor the training marker, with both times set. Markers are matched
// case-insensitively as substrings of the presence status.
func (e ScheduleEntry) IsWorking(dayOffMarker, trainingMarker string) bool {
	if !e.HasShift() {
		return false
	}
	presence := strings.ToUpper(e.Presence)
	if dayOffMarker != "" && strings.Contains(presence, strings.ToUpper(dayOffMarker)) {
		return false
	}
	if trainingMarker != "" && strings.Contains(presence, strings.ToUpper(trainingMarker)) {
		return false
	}
	return true
}

// OnSite reports whether the presence status contains the site marker.
// Export consumers use this to derive the on-site checkbox.
func (e ScheduleEntry) OnSite(siteMarker string) bool {
	if siteMarker == "" {
		return false
	}
	return strings.Contains(strings.ToUpper(e.Presence), strings.ToUpper(siteMarker))
}
