package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/psidex/dlgraph/internal/config"
	"github.com/psidex/dlgraph/internal/dlgraph"
	"github.com/psidex/dlgraph/internal/lib"
)

// parseArgs builds the run config from an optional config file and the flags. Flags
// that were set win over the file. A nil config with a nil error means -h was given.
func parseArgs(args []string, output io.Writer) (*config.Config, error) {
	flagSet := flag.NewFlagSet("dlgraph", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
dlgraph - render an edge list as an interactive graph.

Usage:
  dlgraph [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := config.Default()

	configPath := flagSet.String("config", "", "Path to a .toml or .yaml config file.")
	input := flagSet.String("i", defaults.Input, "Edge list to read.")
	out := flagSet.String("o", defaults.Output, "Where to write the rendered graph.")
	renderer := flagSet.String("r", defaults.Renderer, "Renderer: vis, echarts, json or graphology.")
	replay := flagSet.Duration("replay", defaults.ReplayDelay.Duration, "vis only: add one item every interval instead of all at once.")
	png := flagSet.String("png", defaults.Snapshot, "Also save a PNG screenshot of the HTML output here (needs Chrome).")
	logLevel := flagSet.String("log-level", defaults.LogLevel, "Log level: debug, info, warn or error.")
	logFormat := flagSet.String("log-format", defaults.LogFormat, "Log format: text or json.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil
		}
		return nil, err
	}
	if flagSet.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", flagSet.Args())
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.Input = *input
		case "o":
			cfg.Output = *out
		case "r":
			cfg.Renderer = *renderer
		case "replay":
			cfg.ReplayDelay = lib.DurationFrom(*replay)
		case "png":
			cfg.Snapshot = *png
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg == nil {
		return
	}

	// Validated above, can't fail.
	level, _ := lib.ParseSLogLevel(cfg.LogLevel)
	logger := lib.NewLogger(os.Stderr, level, cfg.LogFormat == "json")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := dlgraph.Run(ctx, logger, *cfg); err != nil {
		logger.Error("Failed to generate graph", "error", err)
		stop()
		os.Exit(1)
	}
}
