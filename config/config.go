package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Ju21000/planing-ia-2/core/metrics"
	"github.com/Ju21000/planing-ia-2/core/roster"
	"github.com/Ju21000/planing-ia-2/infra/mqtt"
	"github.com/Ju21000/planing-ia-2/infra/workspace"
)

type Config struct {
	Input     InputConfig      `json:"input"`
	Roster    roster.Rules     `json:"roster"`
	Export    ExportConfig     `json:"export"`
	Metrics   metrics.Config   `json:"metrics"`
	MQTT      mqtt.Config      `json:"mqtt"`
	Workspace workspace.Config `json:"workspace"`
}

// InputConfig locates the raw schedule extraction.
type InputConfig struct {
	// Path is the JSON extraction file. May also come from the command line.
	Path string `json:"path"`
}

// ExportConfig selects output files. Empty paths disable the writer.
type ExportConfig struct {
	CSVPath  string `json:"csv_path"`
	JSONPath string `json:"json_path"`
	// Title names the week in synced workspaces.
	Title string `json:"title"`
}

func (c *ExportConfig) SetDefaults() {
	if c.Title == "" {
		c.Title = "Semaine"
	}
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("K_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "k_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Roster.SetDefaults()
	cfg.Export.SetDefaults()
	cfg.MQTT.SetDefaults()
	cfg.Workspace.SetDefaults()
	if err := cfg.Roster.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.MQTT.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Workspace.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
