// errors.go — sentinel errors for the percolate package.
//
// NOTE ON NAMING & PREFIXING: every message is prefixed "percolate: ..."
// Callers MUST use errors.Is, never string comparison.
//
// ERROR PRIORITY: shape checks
// (ErrEdgeShapeMismatch, ErrEndpointOutOfRange) run before configuration
// checks (ErrMissingCoords), since a malformed edge list makes any
// downstream boundary computation meaningless.
package percolate

import "errors"

var (
	// ErrEdgeShapeMismatch indicates edges.U and edges.V have different
	// lengths.
	ErrEdgeShapeMismatch = errors.New("percolate: edges.U and edges.V length mismatch")

	// ErrEndpointOutOfRange indicates an edge endpoint falls outside
	// [0, N) for the graph's inferred node count N.
	ErrEndpointOutOfRange = errors.New("percolate: edge endpoint out of range")

	// ErrMissingCoords indicates spanning-cluster detection was requested
	// but no coordinates were supplied.
	ErrMissingCoords = errors.New("percolate: spanning cluster requested without coords")
)
