package unionfind

// UF is a weighted union–find structure over a fixed universe of T nodes,
// indexed [0, T). It is created once per percolation realization via New,
// mutated monotonically by Union, and discarded at the end of the run.
//
// UF is not safe for concurrent use: each goroutine running a realization
// must own its own UF (see the ensemble package's worker pool).
type UF struct {
	parent  []int32 // parent[i] == i iff i is a root
	size    []int32 // size[root] == component size; undefined for non-roots
	maxSize int32   // running max over size[root] across all current roots
}

// New allocates a UF over t nodes, each its own singleton component.
// Complexity: O(t) time and space; the only allocation in the UF lifecycle.
func New(t int32) *UF {
	u := &UF{
		parent:  make([]int32, t),
		size:    make([]int32, t),
		maxSize: 1,
	}
	var i int32
	for i = 0; i < t; i++ {
		u.parent[i] = i
		u.size[i] = 1
	}
	// A freshly created universe of zero nodes has no components at all;
	// maxSize stays at its zero-value-friendly default of 1 only when t > 0.
	if t == 0 {
		u.maxSize = 0
	}

	return u
}

// MaxSize reports the size of the largest component seen so far.
// Complexity: O(1).
func (u *UF) MaxSize() int32 {
	return u.maxSize
}

// Size reports the component size of root r. The caller must pass an
// actual root (e.g. the return value of Find); behavior for a non-root
// index is unspecified, per the package's programmer-error contract.
// Complexity: O(1).
func (u *UF) Size(r int32) int32 {
	return u.size[r]
}
