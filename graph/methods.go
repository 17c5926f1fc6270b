package graph

import "sort"

// AddVertex inserts a vertex if missing; adding an existing ID is a
// no-op. Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.order = append(g.order, id)

	return nil
}

// HasVertex reports whether id has been added.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts an undirected edge between from and to, auto-adding
// either endpoint if it is not already present. It returns
// ErrLoopNotAllowed for a self-loop when the graph disallows loops, and
// ErrMultiEdgeNotAllowed for a repeated pair when the graph disallows
// multi-edges. Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	key := canonicalPair(from, to)
	if _, seen := g.edgeSeen[key]; seen && !g.allowMulti {
		return ErrMultiEdgeNotAllowed
	}

	for _, id := range [2]string{from, to} {
		if _, exists := g.vertices[id]; !exists {
			g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
			g.order = append(g.order, id)
		}
	}
	g.edgeSeen[key] = struct{}{}
	g.edges = append(g.edges, Edge{From: from, To: to})

	return nil
}

// Vertices returns every vertex ID in lexicographic order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices currently in the graph.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges currently in the graph.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// SetCoord attaches a coordinate vector to an existing vertex, stored
// under its Metadata["coord"] key. Every call must use the same
// dimensionality as the first.
func (g *Graph) SetCoord(id string, coord []float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, exists := g.vertices[id]
	if !exists {
		return ErrVertexNotFound
	}
	if g.coordDim == 0 {
		g.coordDim = len(coord)
	} else if len(coord) != g.coordDim {
		return ErrCoordDimMismatch
	}
	v.Metadata["coord"] = coord

	return nil
}

// Coord returns the coordinate vector previously set for id, or nil if
// none was set.
func (g *Graph) Coord(id string) ([]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, exists := g.vertices[id]
	if !exists {
		return nil, ErrVertexNotFound
	}
	coord, _ := v.Metadata["coord"].([]float64)

	return coord, nil
}

// IndexedEdges resolves every vertex ID to a stable int32 index, assigned
// in first-seen order (the order vertices were first added, directly or
// as an edge endpoint), and returns the total vertex count alongside the
// edge list as parallel index arrays — the shape percolate.Edges and
// boundary.Select consume.
func (g *Graph) IndexedEdges() (n int32, u, v []int32) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	index := make(map[string]int32, len(g.order))
	for i, id := range g.order {
		index[id] = int32(i)
	}

	u = make([]int32, len(g.edges))
	v = make([]int32, len(g.edges))
	for i, e := range g.edges {
		u[i] = index[e.From]
		v[i] = index[e.To]
	}

	return int32(len(g.order)), u, v
}

// IndexedCoords returns one coordinate row per vertex, in the same
// first-seen order IndexedEdges uses. If no vertex has a coordinate, it
// returns (nil, nil): spanning-cluster detection simply is not available.
// If some vertices have a coordinate and others do not, it returns
// ErrMissingCoord.
func (g *Graph) IndexedCoords() ([][]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.coordDim == 0 {
		return nil, nil
	}

	coords := make([][]float64, len(g.order))
	for i, id := range g.order {
		coord, _ := g.vertices[id].Metadata["coord"].([]float64)
		if coord == nil {
			return nil, ErrMissingCoord
		}
		coords[i] = coord
	}

	return coords, nil
}
