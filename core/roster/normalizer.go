package roster

import (
	"strings"

	"github.com/Ju21000/planing-ia-2/core/model"
)

// Normalize upper-cases every identity and drops entries matching the excluded
// identity list. It returns a fresh slice; the input is left untouched.
func Normalize(entries []model.ScheduleEntry, rules Rules) []model.ScheduleEntry {
	out := make([]model.ScheduleEntry, 0, len(entries))
	for _, e := range entries {
		e.Person = strings.ToUpper(e.Person)
		if _, excluded := matchName(e.Person, rules.ExcludedNames); excluded {
			continue
		}
		out = append(out, e)
	}
	return out
}
