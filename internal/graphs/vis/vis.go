package vis

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/psidex/dlgraph/internal/graphs"
	. "github.com/psidex/dlgraph/internal/lib"
)

// Vis defines a Renderer that writes a standalone HTML page drawing the graph with
// vis-network. With a replay delay the page adds the items one by one.
type Vis struct {
	mu          *sync.Mutex
	seenNodes   Set[int]
	nodes       []nodeData
	edges       []edgeData
	options     graphs.Options
	replayDelay time.Duration
	title       string
}

var _ graphs.Renderer = (*Vis)(nil)

type Option func(*Vis)

// WithReplayDelay makes the page add one node or edge every d.
func WithReplayDelay(d time.Duration) Option {
	return func(v *Vis) {
		v.replayDelay = d
	}
}

func WithTitle(title string) Option {
	return func(v *Vis) {
		v.title = title
	}
}

func NewVis(opts ...Option) *Vis {
	v := &Vis{
		mu:        &sync.Mutex{},
		seenNodes: NewSet[int](),
		nodes:     []nodeData{},
		edges:     []edgeData{},
		options:   graphs.DefaultOptions(),
		title:     "dlgraph",
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Vis) AddNode(id int, label string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.seenNodes.Add(id) {
		v.nodes = append(v.nodes, nodeData{ID: id, Label: label})
	}
}

func (v *Vis) AddEdge(from, to int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.edges = append(v.edges, edgeData{From: from, To: to})
}

func (v *Vis) SetOptions(opts graphs.Options) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.options = opts
}

func (v *Vis) pageData() (pageData, error) {
	nodesJson, err := json.Marshal(v.nodes)
	if err != nil {
		return pageData{}, err
	}
	edgesJson, err := json.Marshal(v.edges)
	if err != nil {
		return pageData{}, err
	}
	optionsJson, err := json.Marshal(v.options)
	if err != nil {
		return pageData{}, err
	}
	return pageData{
		Title:         v.title,
		NodesJson:     string(nodesJson),
		EdgesJson:     string(edgesJson),
		OptionsJson:   string(optionsJson),
		ReplayDelayMs: v.replayDelay.Milliseconds(),
	}, nil
}

func (v *Vis) SaveGraph(path string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	data, err := v.pageData()
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := page.Execute(file, data); err != nil {
		return err
	}

	return file.Close()
}
