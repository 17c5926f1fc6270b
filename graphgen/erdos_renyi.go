package graphgen

import "github.com/katalvlaran/nzpercolate/graph"

// ErdosRenyi samples an Erdős–Rényi-like graph over n vertices with
// independent edge probability p: every unordered pair {i,j}, i<j, is
// included as an edge with probability p, trialed in stable (i asc, j
// asc) order so a fixed seed reproduces the exact same edge set.
//
// rng is only required for genuine stochastic sampling (0 < p < 1); for
// p == 0 or p == 1 the edge set is deterministic and rng may be nil.
//
// Complexity: O(n) vertex insertions + O(n^2) Bernoulli trials.
func ErdosRenyi(n int, p float64, opts ...Option) (*graph.Graph, error) {
	cfg := newConfig(opts...)

	if n < 1 {
		return nil, ErrTooFewVertices
	}
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability
	}
	if cfg.rng == nil && p > 0 && p < 1 {
		return nil, ErrNeedRandSource
	}

	g := graph.NewGraph()
	for i := 0; i < n; i++ {
		if err := g.AddVertex(cfg.idFn(i)); err != nil {
			return nil, err
		}
	}

	for i := 0; i < n; i++ {
		u := cfg.idFn(i)
		for j := i + 1; j < n; j++ {
			include := cfg.rng == nil && p == 1
			if cfg.rng != nil {
				include = cfg.rng.Float64() <= p
			}
			if !include {
				continue
			}
			if err := g.AddEdge(u, cfg.idFn(j)); err != nil {
				return nil, err
			}
		}
	}

	if cfg.lineCoords {
		for i := 0; i < n; i++ {
			if err := g.SetCoord(cfg.idFn(i), []float64{float64(i)}); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
