// Package config holds the settings of a dlgraph run. Values come from defaults, then
// an optional TOML or YAML file, then command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/psidex/dlgraph/internal/lib"
)

const (
	RendererVis        = "vis"
	RendererECharts    = "echarts"
	RendererJson       = "json"
	RendererGraphology = "graphology"
)

// Renderers lists the accepted Renderer values.
var Renderers = []string{RendererVis, RendererECharts, RendererJson, RendererGraphology}

type Config struct {
	Input           string       `toml:"input" yaml:"input"`
	Output          string       `toml:"output" yaml:"output"`
	Renderer        string       `toml:"renderer" yaml:"renderer"`
	LogLevel        string       `toml:"log_level" yaml:"log_level"`
	LogFormat       string       `toml:"log_format" yaml:"log_format"`
	ReplayDelay     lib.Duration `toml:"replay_delay" yaml:"replay_delay"`
	Snapshot        string       `toml:"snapshot" yaml:"snapshot"`
	SnapshotTimeout lib.Duration `toml:"snapshot_timeout" yaml:"snapshot_timeout"`
}

func Default() Config {
	return Config{
		Input:           "sample.dl",
		Output:          "graph.html",
		Renderer:        RendererVis,
		LogLevel:        "info",
		LogFormat:       "text",
		SnapshotTimeout: lib.DurationFrom(30 * time.Second),
	}
}

// Load reads the file at path over the defaults. The format is picked by extension.
func Load(path string) (Config, error) {
	cfg := Default()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config file extension %q", ext)
	}

	return cfg, nil
}

// HTMLOutput reports whether the chosen renderer writes an HTML page.
func (c Config) HTMLOutput() bool {
	return c.Renderer == RendererVis || c.Renderer == RendererECharts
}

func (c Config) Validate() error {
	var errs []error
	if c.Input == "" {
		errs = append(errs, errors.New("input is required"))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output is required"))
	}
	if !slices.Contains(Renderers, c.Renderer) {
		errs = append(errs, fmt.Errorf("unknown renderer %q, must be one of %s",
			c.Renderer, strings.Join(Renderers, ", ")))
	}
	if _, err := lib.ParseSLogLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level %q", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("invalid log format %q, must be text or json", c.LogFormat))
	}
	if c.ReplayDelay.Duration < 0 {
		errs = append(errs, errors.New("replay delay can't be negative"))
	}
	if c.Snapshot != "" {
		if !c.HTMLOutput() {
			errs = append(errs, fmt.Errorf("snapshot needs an HTML renderer, got %q", c.Renderer))
		}
		if c.SnapshotTimeout.Duration <= 0 {
			errs = append(errs, errors.New("snapshot timeout must be positive"))
		}
	}
	return errors.Join(errs...)
}
