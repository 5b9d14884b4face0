package metrics

import "time"

// RunEvent summarizes one roster pipeline invocation.
type RunEvent struct {
	RunID      string
	RawEntries int
	Entries    int
	Persons    int
	WeekStart  string
	Duration   time.Duration
	Time       time.Time
}

// AssignmentEvent records one meal-break or phone-duty assignment.
type AssignmentEvent struct {
	RunID  string
	Kind   string // "meal" or "phone"
	Slot   string // rotation slot label or duty period
	Person string
	Date   string
	Time   time.Time
}

// FairnessEvent carries the duty-ratio spread observed after a run.
type FairnessEvent struct {
	RunID   string
	Persons int
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
	Time    time.Time
}

// MetricsSink records roster events for observability purposes.
type MetricsSink interface {
	RecordRun(ev RunEvent) error
	RecordAssignments(evs []AssignmentEvent) error
}

// FairnessRecorder is implemented by sinks able to record fairness spreads.
type FairnessRecorder interface {
	RecordFairness(ev FairnessEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordRun(RunEvent) error                  { return nil }
func (NopSink) RecordAssignments([]AssignmentEvent) error { return nil }

// Ensure NopSink implements FairnessRecorder.
func (NopSink) RecordFairness(FairnessEvent) error { return nil }

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}
