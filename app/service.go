package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Ju21000/planing-ia-2/config"
	coremetrics "github.com/Ju21000/planing-ia-2/core/metrics"
	"github.com/Ju21000/planing-ia-2/core/model"
	"github.com/Ju21000/planing-ia-2/core/roster"
	"github.com/Ju21000/planing-ia-2/infra/logger"
	"github.com/Ju21000/planing-ia-2/infra/metrics"
	"github.com/Ju21000/planing-ia-2/infra/mqtt"
	"github.com/Ju21000/planing-ia-2/infra/workspace"
	"github.com/Ju21000/planing-ia-2/internal/eventbus"
	"github.com/Ju21000/planing-ia-2/pkg/export"
	"github.com/Ju21000/planing-ia-2/pkg/input"
)

// Service wires the roster pipeline to its inputs and outputs: the JSON
// extraction on one side, exports, MQTT and workspace sync on the other.
type Service struct {
	cfg         *config.Config
	processor   *roster.Processor
	publisher   mqtt.Publisher
	notion      *workspace.NotionClient
	bus         *eventbus.Bus
	log         logger.Logger
	promEnabled bool
	promPort    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.MetricsSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.MetricsSink
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	bus := eventbus.New()
	processor, err := roster.NewProcessor(cfg.Roster, logg, sink, bus)
	if err != nil {
		return nil, fmt.Errorf("processor: %w", err)
	}

	svc := &Service{
		cfg:         cfg,
		processor:   processor,
		bus:         bus,
		log:         logg,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
	}
	if cfg.MQTT.Enabled {
		pub, err := mqtt.NewPahoPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
		svc.publisher = pub
	}
	if cfg.Workspace.Enabled {
		svc.notion = workspace.NewNotionClient(cfg.Workspace)
	}
	return svc, nil
}

// Run processes the configured extraction and fans the result out. When the
// Prometheus endpoint is enabled it keeps serving until the context is
// cancelled so the run metrics stay scrapeable.
func (s *Service) Run(ctx context.Context) error {
	events := s.bus.Subscribe()
	go func() {
		for ev := range events {
			if se, ok := ev.(roster.StageEvent); ok {
				s.log.Infof("stage %s: %d entries in %s", se.Stage, se.Entries, se.Elapsed)
			}
		}
	}()

	raw, err := input.ReadFile(s.cfg.Input.Path)
	if err != nil {
		return err
	}
	entries, report := s.processor.Process(raw)
	s.log.Infof("run %s: %d entries, %d persons, week %s", report.RunID, report.Entries, report.Persons, report.WeekStart)

	if err := s.export(entries); err != nil {
		return err
	}
	if s.publisher != nil {
		if err := s.publisher.PublishRoster(report.RunID, entries); err != nil {
			return fmt.Errorf("publish roster: %w", err)
		}
	}
	if s.notion != nil {
		title := s.cfg.Export.Title
		if report.WeekStart != "" {
			title = fmt.Sprintf("%s %s", title, report.WeekStart)
		}
		dbID, err := s.notion.SyncRoster(ctx, title, s.cfg.Roster.SiteMarker, entries)
		if err != nil {
			return fmt.Errorf("workspace sync: %w", err)
		}
		s.log.Infof("synced roster to workspace database %s", dbID)
	}

	if s.promEnabled {
		s.log.Infof("metrics endpoint listening on %s", s.promPort)
		if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
			return fmt.Errorf("prom server: %w", err)
		}
	}
	return nil
}

func (s *Service) export(entries []model.ScheduleEntry) error {
	if path := s.cfg.Export.CSVPath; path != "" {
		if err := writeFile(path, func(f *os.File) error {
			return export.WriteCSV(f, entries, s.cfg.Roster.SiteMarker)
		}); err != nil {
			return fmt.Errorf("csv export: %w", err)
		}
		s.log.Infof("wrote %s", path)
	}
	if path := s.cfg.Export.JSONPath; path != "" {
		if err := writeFile(path, func(f *os.File) error {
			return export.WriteJSON(f, entries)
		}); err != nil {
			return fmt.Errorf("json export: %w", err)
		}
		s.log.Infof("wrote %s", path)
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Close releases resources held by the service.
func (s *Service) Close() {
	if s.publisher != nil {
		s.publisher.Close()
	}
	s.bus.Close()
}
