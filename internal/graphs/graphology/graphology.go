package graphology

import (
	"encoding/json"
	"os"
	"strconv"
	"sync"

	"github.com/psidex/dlgraph/internal/graphs"
	. "github.com/psidex/dlgraph/internal/lib"
)

const (
	baseNodeSize = 2
	maxNodeSize  = 10
	sizePerEdge  = 0.2
)

// Graphology defines a Renderer that writes a graphology serialized graph to a JSON
// file, for sigma.js frontends. Nodes grow a little for every incident edge.
type Graphology struct {
	mu        *sync.Mutex
	seenNodes Set[int]
	order     []string
	nodes     map[string]*Node
	edges     []Edge
	options   graphs.Options
}

var _ graphs.Renderer = (*Graphology)(nil)

func NewGraphology() *Graphology {
	return &Graphology{
		mu:        &sync.Mutex{},
		seenNodes: NewSet[int](),
		order:     []string{},
		nodes:     make(map[string]*Node),
		edges:     []Edge{},
		options:   graphs.DefaultOptions(),
	}
}

func (g *Graphology) AddNode(id int, label string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.seenNodes.Add(id) {
		return
	}
	key := strconv.Itoa(id)
	g.order = append(g.order, key)
	g.nodes[key] = &Node{
		Key: key,
		Attributes: NodeAttributes{
			X: 0, Y: 0, Size: baseNodeSize,
			Label: label,
		},
	}
}

func (g *Graphology) grow(key string) {
	if n, ok := g.nodes[key]; ok && n.Attributes.Size < maxNodeSize {
		n.Attributes.Size = min(n.Attributes.Size+sizePerEdge, maxNodeSize)
	}
}

func (g *Graphology) AddEdge(from, to int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	fromKey := strconv.Itoa(from)
	toKey := strconv.Itoa(to)
	g.grow(fromKey)
	if toKey != fromKey {
		g.grow(toKey)
	}

	g.edges = append(g.edges, Edge{
		Key:        strconv.Itoa(len(g.edges) + 1),
		Source:     fromKey,
		Target:     toKey,
		Attributes: EdgeAttributes{Size: 2},
	})
}

func (g *Graphology) SetOptions(opts graphs.Options) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.options = opts
}

// serialize builds the graph in insertion order with the current colors applied.
func (g *Graphology) serialize() SerializedGraph {
	out := SerializedGraph{
		Options: GraphOptions{Type: "undirected", Multi: true, AllowSelfLoops: true},
		Nodes:   make([]Node, 0, len(g.order)),
		Edges:   make([]Edge, 0, len(g.edges)),
	}
	for _, key := range g.order {
		node := *g.nodes[key]
		node.Attributes.Color = g.options.Nodes.Color.Background
		out.Nodes = append(out.Nodes, node)
	}
	for _, edge := range g.edges {
		edge.Attributes.Color = g.options.Edges.Color.Color
		out.Edges = append(out.Edges, edge)
	}
	return out
}

func (g *Graphology) SaveGraph(path string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	marshalled, err := json.Marshal(g.serialize())
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.Write(marshalled)
	if err != nil {
		return err
	}

	return file.Close()
}
