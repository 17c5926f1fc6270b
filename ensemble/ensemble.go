package ensemble

import (
	"sync"

	"github.com/katalvlaran/nzpercolate/boundary"
	"github.com/katalvlaran/nzpercolate/percolate"
)

// ComputeStatistics runs cfg.runs independent Newman–Ziff realizations
// over edges, each with its own random edge order, and reduces them to a
// canonical (bond-occupation-probability) curve for every p in ps.
//
// Validation order: the edge shape check runs first, then the
// ensemble-specific checks (runs, ps), then the endpoint check, the
// missing-coords check and (if spanning is requested) boundary.Select —
// all before any realization starts.
func ComputeStatistics(edges percolate.Edges, ps []float64, opts ...Option) (Canonical, error) {
	cfg := newConfig(opts...)

	if edges.Len() != len(edges.V) {
		return Canonical{}, percolate.ErrEdgeShapeMismatch
	}
	if cfg.runs < 1 {
		return Canonical{}, ErrTooFewRuns
	}
	if len(ps) == 0 {
		return Canonical{}, ErrNoProbabilities
	}
	for _, p := range ps {
		if p < 0 || p > 1 {
			return Canonical{}, ErrProbabilityOutOfRange
		}
	}

	n := edges.NumNodes()
	if cfg.coords != nil && int32(len(cfg.coords)) > n {
		n = int32(len(cfg.coords))
	}
	if err := percolate.ValidateEndpoints(edges, n); err != nil {
		return Canonical{}, err
	}
	if cfg.spanning && cfg.coords == nil {
		return Canonical{}, percolate.ErrMissingCoords
	}

	m := edges.Len()

	var (
		aux0, aux1 int32 = -1, -1
		totalNodes       = n
		fullU, fullV     []int32
		boundaryLen      int
	)
	if cfg.spanning {
		res, err := boundary.Select(cfg.coords, cfg.axis, cfg.margin, n)
		if err != nil {
			return Canonical{}, err
		}
		aux0, aux1 = res.Aux0, res.Aux1
		totalNodes = n + 2
		boundaryLen = res.B()
		fullU = append(append([]int32{}, res.EdgesU...), edges.U...)
		fullV = append(append([]int32{}, res.EdgesV...), edges.V...)
	} else {
		fullU, fullV = edges.U, edges.V
	}

	maxRows, spanRows := runEnsemble(cfg, n, totalNodes, fullU, fullV, boundaryLen, m, aux0, aux1)

	micro := aggregate(maxRows, spanRows, n, cfg.runs, m)

	return convolve(micro, ps, n, m, cfg.spanning), nil
}

// runEnsemble dispatches cfg.runs realizations across cfg.workers
// goroutines. Each worker pulls run indices from a shared job channel and
// writes its result into the row it owns exclusively — no lock, no
// shared mutable state between workers.
func runEnsemble(cfg *config, n, totalNodes int32, fullU, fullV []int32, boundaryLen, m int, aux0, aux1 int32) (maxRows [][]float64, spanRows [][]uint8) {
	maxRows = make([][]float64, cfg.runs)
	spanRows = make([][]uint8, cfg.runs)

	jobs := make(chan int)
	var wg sync.WaitGroup
	workers := cfg.workers
	if workers > cfg.runs {
		workers = cfg.runs
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rng := cfg.runRand(i)
				order := percolate.BuildOrder(boundaryLen, m, rng)
				maxSize, spanning := percolate.RunPercolation(n, totalNodes, fullU, fullV, order, aux0, aux1)
				maxRows[i] = maxSize[boundaryLen:]
				spanRows[i] = spanning[boundaryLen:]
			}
		}()
	}
	for i := 0; i < cfg.runs; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return maxRows, spanRows
}
