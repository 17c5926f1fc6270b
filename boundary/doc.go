// Package boundary selects the two opposite boundary regions used by
// spanning-cluster detection and synthesizes the "virtual vertex" edges
// that the percolation runner prepends to the main edge list: aux_0
// connected to every node on one side of a chosen axis, aux_1 connected to
// every node on the other side.
//
// Select is a pure function: given per-node coordinates, an axis, and a
// margin fraction, it returns the two new vertex indices and the boundary
// edge lists, in scanning order, with no side effects on its inputs.
package boundary
