package metrics

import (
	coremetrics "github.com/Ju21000/planing-ia-2/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records roster events in Prometheus metrics.
type PromSink struct {
	runs        prometheus.Counter
	entries     prometheus.Gauge
	persons     prometheus.Gauge
	assignments *prometheus.CounterVec
	fairness    *prometheus.GaugeVec
}

// NewPromSink registers roster metrics on the default Prometheus registerer.
// The Prometheus server should be started separately using cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "roster_runs_total",
		Help: "Total number of roster pipeline runs",
	})
	entries := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "roster_entries",
		Help: "Number of entries produced by the last run",
	})
	persons := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "roster_persons",
		Help: "Number of persons covered by the last run",
	})
	assignments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roster_assignments_total",
		Help: "Total number of meal and phone duty assignments",
	}, []string{"kind", "slot"})
	fairness := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "roster_duty_ratio",
		Help: "Phone duty ratio spread of the last run",
	}, []string{"stat"})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(entries); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			entries = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(persons); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			persons = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(assignments); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			assignments = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(fairness); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			fairness = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{runs: runs, entries: entries, persons: persons, assignments: assignments, fairness: fairness}, nil
}

// RecordRun updates the run counter and last-run gauges.
func (s *PromSink) RecordRun(ev coremetrics.RunEvent) error {
	s.runs.Inc()
	s.entries.Set(float64(ev.Entries))
	s.persons.Set(float64(ev.Persons))
	return nil
}

// RecordAssignments increments the assignment counter per kind and slot.
func (s *PromSink) RecordAssignments(evs []coremetrics.AssignmentEvent) error {
	for _, ev := range evs {
		s.assignments.WithLabelValues(ev.Kind, ev.Slot).Inc()
	}
	return nil
}

// RecordFairness sets the duty-ratio spread gauges.
func (s *PromSink) RecordFairness(ev coremetrics.FairnessEvent) error {
	s.fairness.WithLabelValues("mean").Set(ev.Mean)
	s.fairness.WithLabelValues("stddev").Set(ev.StdDev)
	s.fairness.WithLabelValues("min").Set(ev.Min)
	s.fairness.WithLabelValues("max").Set(ev.Max)
	return nil
}
