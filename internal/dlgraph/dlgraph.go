// Package dlgraph builds a graph from an edge list on top of the seed cycle and hands
// it to a renderer.
package dlgraph

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/psidex/dlgraph/internal/edgelist"
	"github.com/psidex/dlgraph/internal/graphs"
)

// Build returns the seed graph extended with every edge read from r. Nothing is
// returned unless every line parses.
func Build(logger *slog.Logger, r io.Reader) (*graphs.Graph, error) {
	g := graphs.NewSeedGraph()

	lines, err := edgelist.ReadLines(r)
	if err != nil {
		return nil, fmt.Errorf("read edge list: %w", err)
	}
	logger.Debug("Read edge list", "count", len(lines), "lines", lines)

	edges, err := edgelist.ParseLines(lines)
	if err != nil {
		return nil, fmt.Errorf("parse edge list: %w", err)
	}

	for _, e := range edges {
		g.AddNode(e.From, graphs.NodeLabel(e.From))
		g.AddNode(e.To, graphs.NodeLabel(e.To))
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// BuildFile is Build on the file at path.
func BuildFile(logger *slog.Logger, path string) (*graphs.Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open edge list: %w", err)
	}
	defer file.Close()

	return Build(logger.With("input", path), file)
}

// Render replays g into r, nodes first and then edges, applies opts and saves to
// output.
func Render(g *graphs.Graph, r graphs.Renderer, opts graphs.Options, output string) error {
	for _, n := range g.Nodes() {
		r.AddNode(n.ID, n.Label)
	}
	for _, e := range g.Edges() {
		r.AddEdge(e.From, e.To)
	}
	r.SetOptions(opts)

	if err := r.SaveGraph(output); err != nil {
		return fmt.Errorf("save graph: %w", err)
	}
	return nil
}

// Generate builds the graph from the edge list at input and renders it to output with
// the default options. The renderer is not touched if the input can't be read or
// parsed. The built graph is returned even if rendering fails.
func Generate(logger *slog.Logger, input, output string, r graphs.Renderer) (*graphs.Graph, error) {
	g, err := BuildFile(logger, input)
	if err != nil {
		return nil, err
	}

	if err := Render(g, r, graphs.DefaultOptions(), output); err != nil {
		return g, err
	}

	logger.Info("Saved graph", "nodes", g.NodeCount(), "edges", g.EdgeCount(), "output", output)
	return g, nil
}
