package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psidex/dlgraph/internal/lib"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "sample.dl", cfg.Input)
	assert.Equal(t, "graph.html", cfg.Output)
	assert.Equal(t, RendererVis, cfg.Renderer)
	assert.Equal(t, 30*time.Second, cfg.SnapshotTimeout.Duration)
	assert.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "dlgraph.toml", `
input = "powergrid.dl"
output = "src/graph.html"
renderer = "echarts"
replay_delay = "25ms"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "powergrid.dl", cfg.Input)
	assert.Equal(t, "src/graph.html", cfg.Output)
	assert.Equal(t, RendererECharts, cfg.Renderer)
	assert.Equal(t, 25*time.Millisecond, cfg.ReplayDelay.Duration)
	assert.Equal(t, "info", cfg.LogLevel, "unset keys keep defaults")
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"dlgraph.yaml", "dlgraph.YML"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, "input: sample.dl\nrenderer: graphology\noutput: graph.json\nlog_level: debug\nlog_format: json\n")

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, RendererGraphology, cfg.Renderer)
			assert.Equal(t, "graph.json", cfg.Output)
			assert.Equal(t, "debug", cfg.LogLevel)
			assert.Equal(t, "json", cfg.LogFormat)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("unknown extension", func(t *testing.T) {
		_, err := Load(writeFile(t, "dlgraph.ini", "input=x"))
		assert.ErrorContains(t, err, `unsupported config file extension ".ini"`)
	})

	t.Run("bad toml", func(t *testing.T) {
		_, err := Load(writeFile(t, "dlgraph.toml", "input = "))
		assert.Error(t, err)
	})

	t.Run("bad yaml duration", func(t *testing.T) {
		_, err := Load(writeFile(t, "dlgraph.yaml", "replay_delay: later\n"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"ok", func(c *Config) {}, ""},
		{"no input", func(c *Config) { c.Input = "" }, "input is required"},
		{"no output", func(c *Config) { c.Output = "" }, "output is required"},
		{"bad renderer", func(c *Config) { c.Renderer = "pyvis" }, `unknown renderer "pyvis"`},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, `invalid log level "loud"`},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, `invalid log format "xml"`},
		{"negative replay", func(c *Config) { c.ReplayDelay = lib.DurationFrom(-time.Second) }, "replay delay"},
		{"snapshot of json", func(c *Config) {
			c.Renderer = RendererJson
			c.Snapshot = "graph.png"
		}, "snapshot needs an HTML renderer"},
		{"snapshot without timeout", func(c *Config) {
			c.Snapshot = "graph.png"
			c.SnapshotTimeout = lib.Duration{}
		}, "snapshot timeout must be positive"},
		{"snapshot of echarts", func(c *Config) {
			c.Renderer = RendererECharts
			c.Snapshot = "graph.png"
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
