package graphs

// Renderer is the presentation side of a graph. Implementations collect nodes and edges
// and persist them in their own format.
type Renderer interface {
	// AddNode must be a no-op when id was already added.
	AddNode(id int, label string)
	// AddEdge is called only after both endpoints were added. Repeated edges are kept.
	AddEdge(from, to int)
	SetOptions(opts Options)
	// SaveGraph is not assumed to be thread-safe. path is used as given.
	SaveGraph(path string) error
}
