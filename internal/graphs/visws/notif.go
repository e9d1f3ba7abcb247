package visws

import "github.com/psidex/dlgraph/internal/graphs"

// message is the envelope of everything written to the socket. Type is one of "node",
// "edge", "options" or "done".
type message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type nodeData struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

type edgeData struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type doneData struct {
	Name  string `json:"name"`
	Nodes int    `json:"nodes"`
	Edges int    `json:"edges"`
}

func nodeMessage(id int, label string) message {
	return message{Type: "node", Data: nodeData{ID: id, Label: label}}
}

func edgeMessage(from, to int) message {
	return message{Type: "edge", Data: edgeData{From: from, To: to}}
}

func optionsMessage(opts graphs.Options) message {
	return message{Type: "options", Data: opts}
}

func doneMessage(name string, nodes, edges int) message {
	return message{Type: "done", Data: doneData{Name: name, Nodes: nodes, Edges: edges}}
}
