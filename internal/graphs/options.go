package graphs

// Options is the vis-network styling applied to every graph. The JSON encoding is what
// gets handed to vis.Network.
type Options struct {
	Nodes NodeOptions `json:"nodes"`
	Edges EdgeOptions `json:"edges"`
}

type NodeOptions struct {
	Color NodeColor `json:"color"`
}

type NodeColor struct {
	Border     string         `json:"border"`
	Background string         `json:"background"`
	Highlight  HighlightColor `json:"highlight"`
}

type HighlightColor struct {
	Border     string `json:"border"`
	Background string `json:"background"`
}

type EdgeOptions struct {
	Color EdgeColor `json:"color"`
}

type EdgeColor struct {
	Color     string `json:"color"`
	Highlight string `json:"highlight"`
	Hover     string `json:"hover"`
}

// DefaultOptions returns the fixed style: translucent green nodes with dark borders and
// translucent red edges, both going opaque when highlighted.
func DefaultOptions() Options {
	return Options{
		Nodes: NodeOptions{
			Color: NodeColor{
				Border:     "rgba(0,0,0,0.5)",
				Background: "rgba(0,255,0,0.5)",
				Highlight: HighlightColor{
					Border:     "rgba(0,0,0,1)",
					Background: "rgba(0,255,0,1)",
				},
			},
		},
		Edges: EdgeOptions{
			Color: EdgeColor{
				Color:     "rgba(255,0,0,0.5)",
				Highlight: "rgba(255,0,0,1)",
				Hover:     "rgba(255,0,0,0.8)",
			},
		},
	}
}
