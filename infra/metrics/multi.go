package metrics

import coremetrics "github.com/Ju21000/planing-ia-2/core/metrics"

// MultiSink fans roster events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRun forwards the run event to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordRun(ev coremetrics.RunEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordRun(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordAssignments forwards assignment events to all sinks.
func (m *MultiSink) RecordAssignments(evs []coremetrics.AssignmentEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordAssignments(evs); err != nil {
			return err
		}
	}
	return nil
}

// RecordFairness forwards fairness events when supported by the sink.
func (m *MultiSink) RecordFairness(ev coremetrics.FairnessEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.FairnessRecorder); ok {
			if err := rec.RecordFairness(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
