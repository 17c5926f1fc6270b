// errors.go — sentinel errors for the graph package.
//
// NOTE ON NAMING & PREFIXING: every message is prefixed "graph: ...".
// Callers MUST use errors.Is, never string comparison.
package graph

import "errors"

var (
	// ErrEmptyVertexID indicates the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a vertex ID
	// that has not been added to the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop edge was attempted while
	// the graph was constructed without WithLoops.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted
	// while the graph was constructed without WithMultiEdges.
	ErrMultiEdgeNotAllowed = errors.New("graph: multi-edges not allowed")

	// ErrMissingCoord indicates IndexedCoords was called after some, but
	// not all, vertices received a coordinate via SetCoord.
	ErrMissingCoord = errors.New("graph: coordinate missing for one or more vertices")

	// ErrCoordDimMismatch indicates SetCoord was called with a
	// coordinate whose dimensionality disagrees with previously set
	// coordinates.
	ErrCoordDimMismatch = errors.New("graph: coordinate dimensionality mismatch")
)
