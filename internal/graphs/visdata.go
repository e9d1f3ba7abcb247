package graphs

import (
	"encoding/json"
	"os"
	"sync"

	. "github.com/psidex/dlgraph/internal/lib"
)

type visDataNode struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Shape string `json:"shape"`
	Color string `json:"color"`
}

type visDataEdge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type visDataFile struct {
	Nodes []visDataNode `json:"nodes"`
	Edges []visDataEdge `json:"edges"`
}

// VisData defines a Renderer that writes the graph as a JSON file of vis-network
// DataSet items, ready to be served to a frontend. Node colors are filled in from the
// options at save time.
type VisData struct {
	mu      *sync.RWMutex
	seen    Set[int]
	data    visDataFile
	options Options
}

var _ Renderer = (*VisData)(nil)

func NewVisData() *VisData {
	return &VisData{
		mu:   &sync.RWMutex{},
		seen: NewSet[int](),
		data: visDataFile{
			Nodes: []visDataNode{},
			Edges: []visDataEdge{},
		},
		options: DefaultOptions(),
	}
}

func (v *VisData) AddNode(id int, label string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.seen.Add(id) {
		v.data.Nodes = append(v.data.Nodes, visDataNode{ID: id, Label: label, Shape: "dot"})
	}
}

func (v *VisData) AddEdge(from, to int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.data.Edges = append(v.data.Edges, visDataEdge{From: from, To: to})
}

func (v *VisData) SetOptions(o Options) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.options = o
}

func (v *VisData) toJson() ([]byte, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := visDataFile{
		Nodes: make([]visDataNode, len(v.data.Nodes)),
		Edges: v.data.Edges,
	}
	for i, n := range v.data.Nodes {
		n.Color = v.options.Nodes.Color.Background
		out.Nodes[i] = n
	}

	return json.MarshalIndent(out, "", "  ")
}

func (v *VisData) SaveGraph(path string) error {
	jsonData, err := v.toJson()
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.Write(jsonData)
	if err != nil {
		return err
	}

	return file.Close()
}
