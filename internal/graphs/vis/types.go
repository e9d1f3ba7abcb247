package vis

type nodeData struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

type edgeData struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// pageData is what the page template is executed with. The JSON fields are already
// marshalled.
type pageData struct {
	Title         string
	NodesJson     string
	EdgesJson     string
	OptionsJson   string
	ReplayDelayMs int64
}
