// errors.go — sentinel errors for the ensemble package.
//
// NOTE ON NAMING & PREFIXING: every message is prefixed "ensemble: ...".
// Callers MUST use errors.Is, never string comparison.
//
// ERROR PRIORITY: configuration checks
// local to this package (ErrTooFewRuns, ErrNoProbabilities) run before
// edges/coords are handed down to percolate/boundary, since a malformed
// ensemble request should never trigger a single realization's worth of
// union–find work.
package ensemble

import "errors"

var (
	// ErrTooFewRuns indicates Runs was configured below 1.
	ErrTooFewRuns = errors.New("ensemble: runs must be >= 1")

	// ErrNoProbabilities indicates ps is empty: there is nothing to
	// convolve the microcanonical moments against.
	ErrNoProbabilities = errors.New("ensemble: ps must be non-empty")

	// ErrProbabilityOutOfRange indicates some p in ps falls outside the
	// closed interval [0, 1].
	ErrProbabilityOutOfRange = errors.New("ensemble: probability out of range")
)
