package dlgraph

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/psidex/dlgraph/internal/config"
	"github.com/psidex/dlgraph/internal/graphs"
	"github.com/psidex/dlgraph/internal/graphs/graphology"
	"github.com/psidex/dlgraph/internal/graphs/vis"
	"github.com/psidex/dlgraph/internal/snapshot"
)

// NewRenderer returns the renderer named by cfg.Renderer.
func NewRenderer(cfg config.Config) (graphs.Renderer, error) {
	switch cfg.Renderer {
	case config.RendererVis:
		title := strings.TrimSuffix(filepath.Base(cfg.Input), filepath.Ext(cfg.Input))
		return vis.NewVis(
			vis.WithReplayDelay(cfg.ReplayDelay.Duration),
			vis.WithTitle(title),
		), nil
	case config.RendererECharts:
		return graphs.NewECharts(), nil
	case config.RendererJson:
		return graphs.NewVisData(), nil
	case config.RendererGraphology:
		return graphology.NewGraphology(), nil
	default:
		return nil, fmt.Errorf("unknown renderer: %s", cfg.Renderer)
	}
}

// Run does a whole job: validate cfg, generate the graph and optionally snapshot it.
func Run(ctx context.Context, logger *slog.Logger, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	renderer, err := NewRenderer(cfg)
	if err != nil {
		return err
	}
	logger.Debug("Generating graph", "input", cfg.Input, "output", cfg.Output, "renderer", cfg.Renderer)

	if _, err := Generate(logger, cfg.Input, cfg.Output, renderer); err != nil {
		return err
	}

	if cfg.Snapshot != "" {
		if err := snapshot.Capture(ctx, cfg.Output, cfg.Snapshot, cfg.SnapshotTimeout.Duration); err != nil {
			return err
		}
		logger.Info("Saved snapshot", "path", cfg.Snapshot)
	}

	return nil
}
