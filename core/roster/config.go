package roster

import (
	"fmt"
	"strings"
	"time"
)

// Rules carries the domain tables driving the pipeline: identity exclusions,
// meal rotation, phone-duty eligibility and the numeric thresholds. All
// identity matches are upper-cased substring matches. The zero value plus
// SetDefaults reproduces the store's standing rules.
type Rules struct {
	// DayOffMarker and TrainingMarker are the reserved presence values.
	DayOffMarker   string `json:"day_off_marker"`
	TrainingMarker string `json:"training_marker"`
	// SiteMarker flags on-site presence for export consumers.
	SiteMarker string `json:"site_marker"`

	// ExcludedNames removes matching identities before any processing.
	ExcludedNames []string `json:"excluded_names"`

	// MealSlots are the lunch rotation labels, in tie-breaking order.
	MealSlots []string `json:"meal_slots"`
	// MealPreferences maps an identity substring to one of MealSlots.
	MealPreferences map[string]string `json:"meal_preferences"`
	// NoBreakMarker is assigned to shifts at or under ShortShiftHours.
	NoBreakMarker   string  `json:"no_break_marker"`
	ShortShiftHours float64 `json:"short_shift_hours"`

	// PhoneDutyNames is the coverage allow-list.
	PhoneDutyNames []string `json:"phone_duty_names"`
	// PhoneDutyExceptions bars an identity from duty on one weekday.
	PhoneDutyExceptions map[string]string `json:"phone_duty_exceptions"`
	// ExcludedWeekday is skipped entirely by the duty assigner.
	ExcludedWeekday string `json:"excluded_weekday"`
	// DutyCreditHours is the workload credit per assigned slot.
	DutyCreditHours float64 `json:"duty_credit_hours"`
	// MorningStartBefore and AfternoonEndFrom bound slot candidacy by hour.
	MorningStartBefore int `json:"morning_start_before"`
	AfternoonEndFrom   int `json:"afternoon_end_from"`
	// SlotsPerPeriod caps assignments per half day.
	SlotsPerPeriod int `json:"slots_per_period"`
}

// SetDefaults applies the standing store rules for every unset field.
func (r *Rules) SetDefaults() {
	if r.DayOffMarker == "" {
		r.DayOffMarker = "Repos"
	}
	if r.TrainingMarker == "" {
		r.TrainingMarker = "CFO"
	}
	if r.SiteMarker == "" {
		r.SiteMarker = "FNAC"
	}
	if r.ExcludedNames == nil {
		r.ExcludedNames = []string{"CHRISTOPHE"}
	}
	if len(r.MealSlots) == 0 {
		r.MealSlots = []string{"12:00-13:00", "13:00-14:00", "14:00-15:00"}
	}
	if r.MealPreferences == nil {
		r.MealPreferences = map[string]string{
			"JULIEN":    "12:00-13:00",
			"SEBASTIEN": "12:00-13:00",
			"FLORIAN":   "13:00-14:00",
			"MATTHIEU":  "13:00-14:00",
			"ANASSE":    "14:00-15:00",
			"FREDERIC":  "14:00-15:00",
			"RAYAN":     "14:00-15:00",
		}
	}
	if r.NoBreakMarker == "" {
		r.NoBreakMarker = "pas de pause repas"
	}
	if r.ShortShiftHours == 0 {
		r.ShortShiftHours = 5
	}
	if r.PhoneDutyNames == nil {
		r.PhoneDutyNames = []string{
			"MATTHIEU", "HILAL", "RACHAD", "JULIEN", "SEBASTIEN",
			"FREDERIC", "FLORIAN", "CORINNE", "AUGUSTIN", "RAYAN", "ANASSE",
		}
	}
	if r.PhoneDutyExceptions == nil {
		r.PhoneDutyExceptions = map[string]string{"FREDERIC": "monday"}
	}
	if r.ExcludedWeekday == "" {
		r.ExcludedWeekday = "sunday"
	}
	if r.DutyCreditHours == 0 {
		r.DutyCreditHours = 4
	}
	if r.MorningStartBefore == 0 {
		r.MorningStartBefore = 12
	}
	if r.AfternoonEndFrom == 0 {
		r.AfternoonEndFrom = 14
	}
	if r.SlotsPerPeriod == 0 {
		r.SlotsPerPeriod = 2
	}
}

// Validate checks the rule tables for internal consistency.
func (r Rules) Validate() error {
	if len(r.MealSlots) == 0 {
		return fmt.Errorf("at least one meal slot is required")
	}
	slots := make(map[string]struct{}, len(r.MealSlots))
	for _, s := range r.MealSlots {
		slots[s] = struct{}{}
	}
	for name, slot := range r.MealPreferences {
		if _, ok := slots[slot]; !ok {
			return fmt.Errorf("meal preference for %s targets unknown slot %s", name, slot)
		}
	}
	if _, ok := parseWeekday(r.ExcludedWeekday); !ok {
		return fmt.Errorf("unknown excluded weekday %s", r.ExcludedWeekday)
	}
	for name, day := range r.PhoneDutyExceptions {
		if _, ok := parseWeekday(day); !ok {
			return fmt.Errorf("phone duty exception for %s targets unknown weekday %s", name, day)
		}
	}
	if r.SlotsPerPeriod < 0 {
		return fmt.Errorf("slots_per_period must not be negative")
	}
	return nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(s string) (time.Weekday, bool) {
	d, ok := weekdays[strings.ToLower(strings.TrimSpace(s))]
	return d, ok
}

// matchName reports whether the upper-cased person contains any of the listed
// identity substrings, returning the matched one.
func matchName(person string, names []string) (string, bool) {
	up := strings.ToUpper(person)
	for _, n := range names {
		if n != "" && strings.Contains(up, strings.ToUpper(n)) {
			return n, true
		}
	}
	return "", false
}
