package percolate

import "math/rand"

// Option customizes ComputePercolationSingle's configuration. It mutates a
// config before the realization starts. As a rule, option constructors
// never panic; invalid combinations surface as a returned error instead.
type Option func(*config)

// config holds resolved settings for a single realization, mirroring the
// teacher corpus's functional-options idiom (one config struct, applied
// left-to-right, sensible zero-value defaults).
type config struct {
	spanning bool
	coords   [][]float64
	axis     int
	margin   float64
	rng      *rand.Rand
}

// newConfig resolves defaults, then applies opts in order; later options
// override earlier ones.
func newConfig(opts ...Option) *config {
	cfg := &config{
		spanning: false,
		coords:   nil,
		axis:     0,
		margin:   0.05,
		rng:      nil,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithSpanningCluster enables the sentinel-based spanning-cluster
// mechanism; it requires WithCoords to also be supplied.
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

// WithRand sets an explicit *rand.Rand source for the edge-order
// permutation. If rng is nil, this option is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value and
// assigns it as the permutation source. Use this for reproducible runs.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
