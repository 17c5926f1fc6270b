package percolate

import (
	"math/rand"

	"github.com/katalvlaran/nzpercolate/boundary"
)

// ComputePercolationSingle runs one microcanonical percolation realization
// over edges. With WithSpanningCluster(true) and WithCoords(...), it first
// calls boundary.Select to synthesize the two sentinel vertices and their
// boundary edges, prepends them to the order, and runs the combined
// system; the returned Single always has length M (the boundary prefix is
// discarded internally).
//
// All validation happens here, before any union–find work begins: a
// malformed edges value, an out-of-range endpoint, or spanning-cluster
// detection requested without coordinates all return an error and never
// reach RunPercolation.
func ComputePercolationSingle(edges Edges, opts ...Option) (Single, error) {
	cfg := newConfig(opts...)

	if edges.Len() != len(edges.V) {
		return Single{}, ErrEdgeShapeMismatch
	}
	n := edges.NumNodes()
	if cfg.coords != nil && int32(len(cfg.coords)) > n {
		n = int32(len(cfg.coords))
	}
	if err := ValidateEndpoints(edges, n); err != nil {
		return Single{}, err
	}

	if cfg.spanning && cfg.coords == nil {
		return Single{}, ErrMissingCoords
	}

	m := int32(edges.Len())

	var (
		aux0, aux1 int32 = -1, -1
		totalNodes       = n
		fullU, fullV     []int32
		boundaryLen      int
	)

	if cfg.spanning {
		res, err := boundary.Select(cfg.coords, cfg.axis, cfg.margin, n)
		if err != nil {
			return Single{}, err
		}
		aux0, aux1 = res.Aux0, res.Aux1
		totalNodes = n + 2
		boundaryLen = res.B()
		fullU = append(append([]int32{}, res.EdgesU...), edges.U...)
		fullV = append(append([]int32{}, res.EdgesV...), edges.V...)
	} else {
		fullU, fullV = edges.U, edges.V
	}

	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	order := BuildOrder(boundaryLen, int(m), rng)

	maxSize, span := RunPercolation(n, totalNodes, fullU, fullV, order, aux0, aux1)

	return Single{
		MaxClusterSize: maxSize[boundaryLen:],
		Spanning:       span[boundaryLen:],
		N:              n,
		M:              m,
	}, nil
}

// BuildOrder returns a permutation of [0, bound+mainLen): the first bound
// entries are [0, bound) in natural order (the boundary edges must be
// added first, ahead of any main edge), followed by a Fisher–Yates
// shuffle of [bound, bound+mainLen).
func BuildOrder(bound, mainLen int, rng *rand.Rand) []int32 {
	order := make([]int32, bound+mainLen)
	for i := 0; i < bound; i++ {
		order[i] = int32(i)
	}
	for i := 0; i < mainLen; i++ {
		order[bound+i] = int32(bound + i)
	}
	rng.Shuffle(mainLen, func(i, j int) {
		order[bound+i], order[bound+j] = order[bound+j], order[bound+i]
	})

	return order
}

// ValidateEndpoints checks every edge endpoint lies in [0, n).
func ValidateEndpoints(edges Edges, n int32) error {
	for i := range edges.U {
		if edges.U[i] < 0 || edges.U[i] >= n || edges.V[i] < 0 || edges.V[i] >= n {
			return ErrEndpointOutOfRange
		}
	}

	return nil
}
