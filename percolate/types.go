package percolate

// Edges is the wire shape for a main edge list: parallel arrays rather
// than a slice of structs, so the runner's hot loop is a flat indexed scan.
// U[i]-V[i] is edge i; self-loops (U[i]==V[i]) and duplicate edges are
// permitted no-ops.
type Edges struct {
	U []int32
	V []int32
}

// Len reports the number of main edges, M.
func (e Edges) Len() int { return len(e.U) }

// NumNodes returns one past the largest endpoint seen (the implicit node
// count N), or 0 for an empty edge list.
func (e Edges) NumNodes() int32 {
	var maxIdx int32 = -1
	for i := range e.U {
		if e.U[i] > maxIdx {
			maxIdx = e.U[i]
		}
		if e.V[i] > maxIdx {
			maxIdx = e.V[i]
		}
	}

	return maxIdx + 1
}

// Single is the result of one microcanonical percolation realization: one
// observable per main-edge addition, with any boundary-edge prefix already
// discarded.
type Single struct {
	MaxClusterSize []float64
	Spanning       []uint8
	N              int32
	M              int32
}
