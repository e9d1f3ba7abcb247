package dlgraph

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psidex/dlgraph/internal/edgelist"
	"github.com/psidex/dlgraph/internal/graphs"
	"github.com/psidex/dlgraph/internal/graphs/vis"
	"github.com/psidex/dlgraph/internal/lib"
)

// recorder is a Renderer that remembers every call.
type recorder struct {
	calls   []string
	nodes   []graphs.Node
	edges   []graphs.Edge
	options *graphs.Options
	saved   string
	saveErr error
}

func (r *recorder) AddNode(id int, label string) {
	r.calls = append(r.calls, "node")
	for _, n := range r.nodes {
		if n.ID == id {
			return
		}
	}
	r.nodes = append(r.nodes, graphs.Node{ID: id, Label: label})
}

func (r *recorder) AddEdge(from, to int) {
	r.calls = append(r.calls, "edge")
	r.edges = append(r.edges, graphs.Edge{From: from, To: to})
}

func (r *recorder) SetOptions(opts graphs.Options) {
	r.calls = append(r.calls, "options")
	r.options = &opts
}

func (r *recorder) SaveGraph(path string) error {
	r.calls = append(r.calls, "save")
	r.saved = path
	return r.saveErr
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.dl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func ids(nodes []graphs.Node) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

var seedEdges = []graphs.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 1}}

func TestGenerate(t *testing.T) {
	input := writeInput(t, "4 5\n5 6\n")
	rec := &recorder{}

	g, err := Generate(lib.Discard(), input, "graph.html", rec)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(g.Nodes()))
	wantEdges := append(append([]graphs.Edge{}, seedEdges...), graphs.Edge{From: 4, To: 5}, graphs.Edge{From: 5, To: 6})
	if diff := cmp.Diff(wantEdges, g.Edges()); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, g.Nodes(), rec.nodes)
	assert.Equal(t, g.Edges(), rec.edges)
	require.NotNil(t, rec.options)
	assert.Equal(t, graphs.DefaultOptions(), *rec.options)
	assert.Equal(t, "graph.html", rec.saved)
	assert.Equal(t, []string{"options", "save"}, rec.calls[len(rec.calls)-2:])
}

func TestGenerateEmptyInput(t *testing.T) {
	g, err := Generate(lib.Discard(), writeInput(t, ""), "graph.html", &recorder{})
	require.NoError(t, err)

	want := graphs.NewSeedGraph()
	assert.Equal(t, want.Nodes(), g.Nodes())
	assert.Equal(t, seedEdges, g.Edges())
}

func TestGenerateCounts(t *testing.T) {
	// N lines give 3 + N edges and at most 3 + 2N nodes.
	lines := []string{"1 2", "2 9", "9 9", "10 11", "1 10", "2 1"}
	g, err := Generate(lib.Discard(), writeInput(t, strings.Join(lines, "\n")+"\n"), "out", &recorder{})
	require.NoError(t, err)

	assert.Equal(t, 3+len(lines), g.EdgeCount())
	assert.Equal(t, 6, g.NodeCount())
	assert.LessOrEqual(t, g.NodeCount(), 3+2*len(lines))
}

func TestGenerateWritesHTML(t *testing.T) {
	output := filepath.Join(t.TempDir(), "graph.html")
	_, err := Generate(lib.Discard(), writeInput(t, "4 5\n5 6\n"), output, vis.NewVis())
	require.NoError(t, err)

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestGenerateMalformed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"blank line", "4 5\n\n", edgelist.ErrTokenCount},
		{"one token", "4 5\n6\n", edgelist.ErrTokenCount},
		{"three tokens", "4 5 6\n", edgelist.ErrTokenCount},
		{"not an integer", "4 5\n5 six\n", edgelist.ErrNotInteger},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "graph.html")
			rec := &recorder{}

			g, err := Generate(lib.Discard(), writeInput(t, tt.input), output, rec)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tt.wantErr)

			var parseErr *edgelist.ParseError
			assert.ErrorAs(t, err, &parseErr)

			assert.Empty(t, rec.calls, "renderer must not be touched")
			_, statErr := os.Stat(output)
			assert.ErrorIs(t, statErr, fs.ErrNotExist)
		})
	}
}

func TestGenerateMissingInput(t *testing.T) {
	rec := &recorder{}
	_, err := Generate(lib.Discard(), filepath.Join(t.TempDir(), "nope.dl"), "graph.html", rec)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorContains(t, err, "open edge list")
	assert.Empty(t, rec.calls)
}

func TestGenerateSaveError(t *testing.T) {
	boom := errors.New("disk full")
	rec := &recorder{saveErr: boom}

	g, err := Generate(lib.Discard(), writeInput(t, "4 5\n"), "graph.html", rec)
	assert.ErrorIs(t, err, boom)
	assert.NotNil(t, g)
}

func TestBuildNodeReAdd(t *testing.T) {
	g, err := Build(lib.Discard(), strings.NewReader("1 2\n2 1\n3 3\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids(g.Nodes()))
	assert.Equal(t, 6, g.EdgeCount())
}

func TestBuildOrderPreserved(t *testing.T) {
	var sb strings.Builder
	var want []graphs.Edge
	want = append(want, seedEdges...)
	for i := 0; i < 50; i++ {
		from, to := 100-i, i*7
		fmt.Fprintf(&sb, "%d %d\n", from, to)
		want = append(want, graphs.Edge{From: from, To: to})
	}

	g, err := Build(lib.Discard(), strings.NewReader(sb.String()))
	require.NoError(t, err)
	if diff := cmp.Diff(want, g.Edges()); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}
