package roster

import (
	"time"

	"github.com/google/uuid"

	"github.com/Ju21000/planing-ia-2/core/logger"
	"github.com/Ju21000/planing-ia-2/core/metrics"
	"github.com/Ju21000/planing-ia-2/core/model"
	"github.com/Ju21000/planing-ia-2/internal/eventbus"
)

// StageEvent is published on the event bus after each pipeline stage.
type StageEvent struct {
	RunID   string
	Stage   string
	Entries int
	Elapsed time.Duration
}

// RunReport describes one completed pipeline invocation.
type RunReport struct {
	RunID      string
	RawEntries int
	Entries    int
	Persons    int
	WeekStart  string
	Fairness   FairnessReport
	Elapsed    time.Duration
}

// Processor runs the roster pipeline: normalize, assign meals, assign phone
// duties, compute percentages, pad and sort. Each invocation is independent;
// the accumulator state lives and dies inside Process.
type Processor struct {
	rules Rules
	log   logger.Logger
	sink  metrics.MetricsSink
	bus   eventbus.EventBus
}

// NewProcessor builds a Processor. Unset rules fall back to the standing
// defaults; log, sink and bus may be nil.
func NewProcessor(rules Rules, log logger.Logger, sink metrics.MetricsSink, bus eventbus.EventBus) (*Processor, error) {
	rules.SetDefaults()
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = nopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Processor{rules: rules, log: log, sink: sink, bus: bus}, nil
}

// Rules returns the effective rule tables after defaulting.
func (p *Processor) Rules() Rules { return p.rules }

// Process transforms raw extraction entries into the final weekly roster.
// Empty input yields an empty roster, never an error.
func (p *Processor) Process(raw []model.ScheduleEntry) ([]model.ScheduleEntry, RunReport) {
	start := time.Now()
	report := RunReport{RunID: uuid.NewString(), RawEntries: len(raw)}

	entries := p.stage(report.RunID, "normalize", raw, func(in []model.ScheduleEntry) []model.ScheduleEntry {
		return Normalize(in, p.rules)
	})
	if len(entries) == 0 {
		p.log.Infof("run %s: no entries after normalization", report.RunID)
		report.Elapsed = time.Since(start)
		return []model.ScheduleEntry{}, report
	}

	entries = p.stage(report.RunID, "meals", entries, func(in []model.ScheduleEntry) []model.ScheduleEntry {
		return AssignMeals(in, p.rules)
	})
	entries = p.stage(report.RunID, "phone_duties", entries, func(in []model.ScheduleEntry) []model.ScheduleEntry {
		return AssignPhoneDuties(in, p.rules)
	})
	entries = p.stage(report.RunID, "percentages", entries, func(in []model.ScheduleEntry) []model.ScheduleEntry {
		return ApplyPhonePercentages(in, p.rules)
	})
	entries = p.stage(report.RunID, "padding", entries, func(in []model.ScheduleEntry) []model.ScheduleEntry {
		return PadWeek(in, p.rules)
	})

	report.Entries = len(entries)
	report.Persons = countPersons(entries)
	if anchor, ok := model.ParseDate(entries[0].Date); ok {
		report.WeekStart = model.FormatDate(model.WeekStart(anchor))
	}
	report.Fairness = Fairness(entries, p.rules)
	report.Elapsed = time.Since(start)

	p.record(entries, report)
	p.log.Infof("run %s: %d entries for %d persons, week of %s, done in %s",
		report.RunID, report.Entries, report.Persons, report.WeekStart, report.Elapsed)
	return entries, report
}

func (p *Processor) stage(runID, name string, in []model.ScheduleEntry, fn func([]model.ScheduleEntry) []model.ScheduleEntry) []model.ScheduleEntry {
	start := time.Now()
	out := fn(in)
	elapsed := time.Since(start)
	p.log.Debugw("stage complete", map[string]any{
		"run_id": runID, "stage": name, "entries": len(out), "elapsed": elapsed.String(),
	})
	if p.bus != nil {
		p.bus.Publish(StageEvent{RunID: runID, Stage: name, Entries: len(out), Elapsed: elapsed})
	}
	return out
}

func (p *Processor) record(entries []model.ScheduleEntry, report RunReport) {
	now := time.Now()
	if err := p.sink.RecordRun(metrics.RunEvent{
		RunID:      report.RunID,
		RawEntries: report.RawEntries,
		Entries:    report.Entries,
		Persons:    report.Persons,
		WeekStart:  report.WeekStart,
		Duration:   report.Elapsed,
		Time:       now,
	}); err != nil {
		p.log.Errorf("record run: %v", err)
	}

	var assignments []metrics.AssignmentEvent
	for _, e := range entries {
		if e.MealBreak != "" && e.MealBreak != "-" && e.MealBreak != p.rules.NoBreakMarker {
			assignments = append(assignments, metrics.AssignmentEvent{
				RunID: report.RunID, Kind: "meal", Slot: e.MealBreak,
				Person: e.Person, Date: e.Date, Time: now,
			})
		}
		if e.PhoneDuty == model.PhoneDutyMorning || e.PhoneDuty == model.PhoneDutyAfternoon {
			assignments = append(assignments, metrics.AssignmentEvent{
				RunID: report.RunID, Kind: "phone", Slot: string(e.PhoneDuty),
				Person: e.Person, Date: e.Date, Time: now,
			})
		}
	}
	if len(assignments) > 0 {
		if err := p.sink.RecordAssignments(assignments); err != nil {
			p.log.Errorf("record assignments: %v", err)
		}
	}

	if rec, ok := p.sink.(metrics.FairnessRecorder); ok {
		f := report.Fairness
		if err := rec.RecordFairness(metrics.FairnessEvent{
			RunID: report.RunID, Persons: f.Persons,
			Mean: f.Mean, StdDev: f.StdDev, Min: f.Min, Max: f.Max, Time: now,
		}); err != nil {
			p.log.Errorf("record fairness: %v", err)
		}
	}
}

func countPersons(entries []model.ScheduleEntry) int {
	seen := make(map[string]struct{})
	for _, e := range entries {
		seen[e.Person] = struct{}{}
	}
	return len(seen)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
