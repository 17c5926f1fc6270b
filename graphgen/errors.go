// errors.go — sentinel errors for the graphgen package.
//
// NOTE ON NAMING & PREFIXING: every message is prefixed "graphgen: ...".
// Callers MUST use errors.Is, never string comparison.
package graphgen

import "errors"

var (
	// ErrTooFewVertices indicates n < 1.
	ErrTooFewVertices = errors.New("graphgen: n must be >= 1")

	// ErrInvalidProbability indicates p falls outside the closed
	// interval [0, 1].
	ErrInvalidProbability = errors.New("graphgen: p must be in [0, 1]")

	// ErrNeedRandSource indicates a genuine Bernoulli trial (0 < p < 1)
	// was requested without an RNG.
	ErrNeedRandSource = errors.New("graphgen: rng is required for 0 < p < 1")
)
