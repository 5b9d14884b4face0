package metrics

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/Ju21000/planing-ia-2/core/metrics"
	"github.com/Ju21000/planing-ia-2/infra/logger"
)

// InfluxSink writes roster events to an InfluxDB instance using the official
// client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(cfg coremetrics.Config) *InfluxSink {
	base := strings.TrimSuffix(cfg.InfluxURL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.InfluxToken,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxOrg, cfg.InfluxBucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns a
// NopSink if the health check fails.
func NewInfluxSinkWithFallback(cfg coremetrics.Config) coremetrics.MetricsSink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordRun writes the run summary as a single point.
func (s *InfluxSink) RecordRun(ev coremetrics.RunEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("roster_run").
		AddTag("run_id", ev.RunID).
		AddTag("week_start", ev.WeekStart).
		AddField("raw_entries", ev.RawEntries).
		AddField("entries", ev.Entries).
		AddField("persons", ev.Persons).
		AddField("duration_ms", ev.Duration.Milliseconds()).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordAssignments writes one point per assignment.
func (s *InfluxSink) RecordAssignments(evs []coremetrics.AssignmentEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, ev := range evs {
		p := write.NewPointWithMeasurement("roster_assignment").
			AddTag("run_id", ev.RunID).
			AddTag("kind", ev.Kind).
			AddTag("slot", ev.Slot).
			AddTag("person", ev.Person).
			AddTag("date", ev.Date).
			AddField("count", 1).
			SetTime(ev.Time)
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RecordFairness writes the duty-ratio spread of a run.
func (s *InfluxSink) RecordFairness(ev coremetrics.FairnessEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("roster_fairness").
		AddTag("run_id", ev.RunID).
		AddField("persons", ev.Persons).
		AddField("mean", round3(ev.Mean)).
		AddField("stddev", round3(ev.StdDev)).
		AddField("min", round3(ev.Min)).
		AddField("max", round3(ev.Max)).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
