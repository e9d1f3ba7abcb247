package graphs

import (
	"errors"
	"fmt"

	. "github.com/psidex/dlgraph/internal/lib"
)

var ErrUnknownNode = errors.New("edge endpoint is not a node")

type Node struct {
	ID    int
	Label string
}

type Edge struct {
	From int
	To   int
}

// Graph keeps nodes and edges in insertion order. Nodes are unique by ID, edges are not
// de-duplicated. It is not safe for concurrent use.
type Graph struct {
	ids   Set[int]
	nodes []Node
	edges []Edge
}

func NewGraph() *Graph {
	return &Graph{
		ids:   NewSet[int](),
		nodes: []Node{},
		edges: []Edge{},
	}
}

// NodeLabel is the display label every node gets.
func NodeLabel(id int) string {
	return fmt.Sprintf("Node %d", id)
}

// NewSeedGraph returns the graph every edge list is added on top of: nodes 1, 2 and 3
// joined in a cycle.
func NewSeedGraph() *Graph {
	g := NewGraph()
	for _, id := range []int{1, 2, 3} {
		g.AddNode(id, NodeLabel(id))
	}
	// Endpoints exist, these can't fail.
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(3, 1)
	return g
}

// AddNode adds a node and reports whether it is new. Re-adding an ID keeps the first
// label.
func (g *Graph) AddNode(id int, label string) bool {
	if !g.ids.Add(id) {
		return false
	}
	g.nodes = append(g.nodes, Node{ID: id, Label: label})
	return true
}

func (g *Graph) AddEdge(from, to int) error {
	if !g.ids.Contains(from) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, from)
	}
	if !g.ids.Contains(to) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, to)
	}
	g.edges = append(g.edges, Edge{From: from, To: to})
	return nil
}

func (g *Graph) HasNode(id int) bool {
	return g.ids.Contains(id)
}

// Nodes returns a copy of the nodes in insertion order.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, len(g.nodes))
	copy(nodes, g.nodes)
	return nodes
}

// Edges returns a copy of the edges in insertion order.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

func (g *Graph) EdgeCount() int {
	return len(g.edges)
}
