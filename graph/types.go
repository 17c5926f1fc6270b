package graph

import "sync"

// Vertex is a node in the graph, identified by a caller-chosen string ID.
// Metadata carries arbitrary user data and is not touched by Graph's own
// methods beyond "coord", which SetCoord/Coord manage directly.
type Vertex struct {
	ID       string
	Metadata map[string]interface{}
}

// Edge is an unweighted, undirected connection between two vertex IDs.
type Edge struct {
	From, To string
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithLoops permits self-loop edges (From == To).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits more than one edge between the same pair of
// vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is a thread-safe, unweighted, undirected graph container keyed by
// string vertex IDs. mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool
	allowMulti bool

	vertices map[string]*Vertex
	order    []string // insertion order, used for stable IndexedEdges
	edges    []Edge
	edgeSeen map[[2]string]struct{} // canonicalized (min,max) pairs, for multi-edge rejection

	coordDim int // dimensionality of the first coordinate set via SetCoord, 0 until then
}

// NewGraph creates an empty Graph. By default neither self-loops nor
// multi-edges are permitted.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edgeSeen: make(map[[2]string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// canonicalPair returns (from, to) ordered so that identical unordered
// pairs hash to the same key regardless of insertion direction.
func canonicalPair(from, to string) [2]string {
	if from <= to {
		return [2]string{from, to}
	}

	return [2]string{to, from}
}
