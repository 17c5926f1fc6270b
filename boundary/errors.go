// errors.go — sentinel errors for the boundary package.
//
// NOTE ON NAMING & PREFIXING: every message is prefixed "boundary: ..." for
// consistent grepping. Callers MUST use errors.Is, never string comparison.
//
// ERROR PRIORITY: ErrMarginOutOfRange is checked first, then the row count
// (ErrCoordShapeMismatch), then ErrAxisOutOfRange against the first row's
// width, then rectangularity (ErrCoordShapeMismatch); all before any scan
// of the coordinate values.
package boundary

import "errors"

var (
	// ErrAxisOutOfRange indicates axis is not in [0, D) for the given
	// coordinate dimensionality D.
	ErrAxisOutOfRange = errors.New("boundary: axis out of range")

	// ErrMarginOutOfRange indicates margin is not in the closed interval
	// [0, 1].
	ErrMarginOutOfRange = errors.New("boundary: margin out of range")

	// ErrCoordShapeMismatch indicates coords is not a rectangular N×D
	// array, or its row count disagrees with the caller's declared node
	// count n.
	ErrCoordShapeMismatch = errors.New("boundary: coords shape mismatch")
)
