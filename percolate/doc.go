// Package percolate drives edge-by-edge Newman–Ziff percolation: given an
// edge list and an order to add them in, it records, after each addition,
// the running maximum component size and (optionally) whether two virtual
// boundary vertices have become connected.
//
// RunPercolation is the pure engine entry point: it takes raw int32
// arrays and returns raw observable arrays, with no validation and no
// allocation beyond the two output slices and one union–find structure.
// ComputePercolationSingle is
// the ergonomic, validated wrapper most callers want: it accepts an Edges
// value, optionally delegates to the boundary package for spanning-cluster
// setup, builds one random edge order, and calls RunPercolation.
package percolate
