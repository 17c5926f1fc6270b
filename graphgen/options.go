package graphgen

import (
	"math/rand"
	"strconv"
)

// Option customizes ErdosRenyi's configuration, mirroring the
// functional-options idiom used throughout this module.
type Option func(*config)

type config struct {
	rng        *rand.Rand
	idFn       func(int) string
	lineCoords bool
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		rng:        nil,
		idFn:       func(i int) string { return strconv.Itoa(i) },
		lineCoords: false,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithRand sets an explicit *rand.Rand source for edge sampling. If rng
// is nil, this option is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value and
// assigns it as the sampling source.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithIDFn injects a custom index→vertex-ID function. If fn is nil, this
// option is a no-op.
func WithIDFn(fn func(int) string) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.idFn = fn
		}
	}
}

// WithLineCoords assigns each vertex i a 1-D coordinate {float64(i)},
// making the generated graph immediately usable with
// boundary.Select/WithSpanningCluster: vertex 0 sits at one end of the
// line, vertex n-1 at the other.
func WithLineCoords(enabled bool) Option {
	return func(cfg *config) { cfg.lineCoords = enabled }
}
