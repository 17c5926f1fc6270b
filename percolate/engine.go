package percolate

import "github.com/katalvlaran/nzpercolate/unionfind"

// RunPercolation is the pure percolation-runner engine: given the full
// (boundary-prefixed, if any) edge arrays u/v, an order to visit them in,
// and the two sentinel indices (or -1/-1 for "no spanning detection"), it
// returns one maxClusterSize and one spanning value per edge in order.
//
// RunPercolation performs no validation: out-of-range indices, mismatched
// slice lengths, or a bad order are a programmer error, and the hot path
// is written to stay infallible. Validate with ComputePercolationSingle,
// or at the caller's own API boundary, before reaching this function.
//
// numNodesMain is accepted for interface parity with the original kernel
// this was translated from but is not read by this implementation:
// totalNodes alone determines the union–find universe size.
//
// Complexity: O(E) amortized union–find operations, zero allocation
// beyond the two output slices and the one *unionfind.UF.
func RunPercolation(numNodesMain, totalNodes int32, u, v, order []int32, aux0, aux1 int32) (maxClusterSize []float64, spanning []uint8) {
	_ = numNodesMain

	e := len(order)
	maxClusterSize = make([]float64, e)
	spanning = make([]uint8, e)
	if e == 0 {
		return maxClusterSize, spanning
	}

	uf := unionfind.New(totalNodes)
	trackSpanning := aux0 >= 0 && aux1 >= 0
	spanned := false

	for t, edgeIdx := range order {
		uf.Union(u[edgeIdx], v[edgeIdx])
		maxClusterSize[t] = float64(uf.MaxSize())

		if !trackSpanning {
			continue
		}
		if spanned {
			spanning[t] = 1
			continue
		}
		if uf.Find(aux0) == uf.Find(aux1) {
			spanned = true
			spanning[t] = 1
		}
	}

	return maxClusterSize, spanning
}
