package ensemble

import (
	"math/rand"
	"runtime"
)

// Option customizes ComputeStatistics's configuration, mirroring
// percolate.Option's functional-options idiom.
type Option func(*config)

// config holds resolved settings for one ensemble computation.
type config struct {
	runs     int
	workers  int
	spanning bool
	coords   [][]float64
	axis     int
	margin   float64
	seed     int64
}

// newConfig resolves defaults, then applies opts in order; later options
// override earlier ones.
func newConfig(opts ...Option) *config {
	cfg := &config{
		runs:     1,
		workers:  runtime.GOMAXPROCS(0),
		spanning: false,
		coords:   nil,
		axis:     0,
		margin:   0.05,
		seed:     1,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	return cfg
}

// WithRuns sets R, the number of independent realizations to average
// over.
func WithRuns(runs int) Option {
	return func(cfg *config) { cfg.runs = runs }
}

// WithWorkers bounds how many realizations run concurrently. Values < 1
// are clamped to 1 by newConfig.
func WithWorkers(workers int) Option {
	return func(cfg *config) { cfg.workers = workers }
}

// WithSpanningCluster enables sentinel-based spanning-cluster detection
// for every realization; it requires WithCoords to also be supplied.
func WithSpanningCluster(enabled bool) Option {
	return func(cfg *config) { cfg.spanning = enabled }
}

// WithCoords supplies per-node coordinates for boundary selection.
func WithCoords(coords [][]float64) Option {
	return func(cfg *config) { cfg.coords = coords }
}

// WithAxis selects the coordinate column used for boundary selection.
func WithAxis(axis int) Option {
	return func(cfg *config) { cfg.axis = axis }
}

// WithMargin sets the boundary margin fraction, in [0, 1].
func WithMargin(margin float64) Option {
	return func(cfg *config) { cfg.margin = margin }
}

// WithSeed sets the base seed from which every run's *rand.Rand is
// derived (seed + run index), so a fixed seed reproduces the whole
// ensemble regardless of worker-pool scheduling.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.seed = seed }
}

// runRand derives the deterministic per-run RNG stream for run index i.
func (cfg *config) runRand(i int) *rand.Rand {
	return rand.New(rand.NewSource(cfg.seed + int64(i)))
}
