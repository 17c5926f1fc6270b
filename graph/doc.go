// Package graph provides a small, thread-safe, string-keyed graph
// container and the conversion boundary between it and the percolation
// core: IndexedEdges resolves every vertex ID to a stable int32 index in
// first-seen order, and IndexedCoords returns per-node coordinates in
// that same order, ready for percolate.Edges / boundary.Select.
//
// Unlike a general-purpose graph library, Graph is deliberately
// unweighted and undirected only — percolation observables never depend
// on edge weight or direction.
package graph
