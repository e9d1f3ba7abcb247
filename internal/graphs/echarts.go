package graphs

import (
	"os"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	. "github.com/psidex/dlgraph/internal/lib"
)

// ECharts defines a Renderer that renders a go-echarts force graph HTML file.
type ECharts struct {
	mu      *sync.Mutex
	seen    Set[int]
	labels  map[int]string
	nodes   []opts.GraphNode
	links   []opts.GraphLink
	options Options
}

var _ Renderer = (*ECharts)(nil)

func NewECharts() *ECharts {
	return &ECharts{
		mu:      &sync.Mutex{},
		seen:    NewSet[int](),
		labels:  make(map[int]string),
		nodes:   []opts.GraphNode{},
		links:   []opts.GraphLink{},
		options: DefaultOptions(),
	}
}

func (e *ECharts) AddNode(id int, label string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.seen.Add(id) {
		return
	}
	e.labels[id] = label
	e.nodes = append(e.nodes, opts.GraphNode{Name: label})
}

func (e *ECharts) AddEdge(from, to int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// ECharts links refer to nodes by name.
	e.links = append(e.links, opts.GraphLink{
		Source: e.labels[from],
		Target: e.labels[to],
	})
}

func (e *ECharts) SetOptions(o Options) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.options = o
}

func (e *ECharts) SaveGraph(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	page := components.NewPage()
	page.AddCharts(graphBase(e.nodes, e.links, e.options))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return err
	}
	return f.Close()
}

func graphBase(nodes []opts.GraphNode, links []opts.GraphLink, o Options) *charts.Graph {
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "dlgraph",
			Height:    "100vh",
			Width:     "100vw",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)
	graph.AddSeries(
		"graph",
		nodes,
		links,
		charts.WithGraphChartOpts(
			opts.GraphChart{
				Draggable: opts.Bool(true),
				Roam:      opts.Bool(true),
				Force:     &opts.GraphForce{Repulsion: 400},
			},
		),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Color:    "black",
			Position: "top",
		}),
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color:       o.Nodes.Color.Background,
			BorderColor: o.Nodes.Color.Border,
			BorderWidth: 1,
		}),
		charts.WithEmphasisOpts(opts.Emphasis{
			ItemStyle: &opts.ItemStyle{
				Color:       o.Nodes.Color.Highlight.Background,
				BorderColor: o.Nodes.Color.Highlight.Border,
			},
		}),
		charts.WithLineStyleOpts(opts.LineStyle{
			Color: o.Edges.Color.Color,
		}),
	)
	return graph
}
