package roster

// Package roster turns the raw per-person per-day entries produced by the
// document extraction service into a complete weekly roster. The pipeline is
// five pure stages run in sequence: identity normalization, meal-break
// rotation, phone-duty coverage under a cumulative fairness ratio, per-person
// phone percentages and weekly padding with deterministic ordering. Rule
// tables (exclusions, preferences, eligibility, thresholds) are injected
// through Rules rather than hard-coded.
